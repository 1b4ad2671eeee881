package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/models/entities"
	"github.com/Xushengqwer/qa_service/models/enums"
	"github.com/Xushengqwer/qa_service/myErrors"
)

func TestNotificationService_MarkRead_Ownership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	notification := &entities.Notification{UserID: "owner", Type: enums.NotificationTypeAnswer, Message: "m"}
	require.NoError(t, f.notificationRepo.Create(ctx, notification))

	// 只能操作自己的通知
	err := f.notificationSvc.MarkRead(ctx, "other", notification.ID)
	assert.ErrorIs(t, err, myErrors.ErrForbidden)

	require.NoError(t, f.notificationSvc.MarkRead(ctx, "owner", notification.ID))

	unread, err := f.notificationSvc.UnreadCount(ctx, "owner")
	require.NoError(t, err)
	assert.Zero(t, unread.UnreadCount)

	// 重复标记已读是幂等的
	require.NoError(t, f.notificationSvc.MarkRead(ctx, "owner", notification.ID))
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, f.notificationRepo.Create(ctx, &entities.Notification{
			UserID: "u", Type: enums.NotificationTypeAnswer, Message: "m",
		}))
	}
	require.NoError(t, f.notificationRepo.Create(ctx, &entities.Notification{
		UserID: "other", Type: enums.NotificationTypeAnswer, Message: "m",
	}))

	require.NoError(t, f.notificationSvc.MarkAllRead(ctx, "u"))

	unread, err := f.notificationSvc.UnreadCount(ctx, "u")
	require.NoError(t, err)
	assert.Zero(t, unread.UnreadCount)

	// 别人的未读不受影响
	unread, err = f.notificationSvc.UnreadCount(ctx, "other")
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread.UnreadCount)
}

func TestNotificationService_Delete_Ownership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	notification := &entities.Notification{UserID: "owner", Type: enums.NotificationTypeAnswer, Message: "m"}
	require.NoError(t, f.notificationRepo.Create(ctx, notification))

	err := f.notificationSvc.Delete(ctx, "other", notification.ID)
	assert.ErrorIs(t, err, myErrors.ErrForbidden)

	require.NoError(t, f.notificationSvc.Delete(ctx, "owner", notification.ID))

	list, err := f.notificationSvc.ListByUser(ctx, "owner")
	require.NoError(t, err)
	assert.Empty(t, list.Notifications)
}

func TestNotificationService_Broadcast(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "u1", enums.RoleUser, false)
	f.mustCreateUser(t, "u2", enums.RoleUser, false)
	f.mustCreateUser(t, "admin", enums.RoleAdmin, false)

	count, err := f.notificationSvc.Broadcast(ctx, &dto.BroadcastRequest{Message: "系统维护公告"})
	require.NoError(t, err)
	// 广播不包含管理员
	assert.EqualValues(t, 2, count)

	list, err := f.notificationSvc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)
	// 类型缺省落为 admin-message
	assert.Equal(t, enums.NotificationTypeAdminMessage, list.Notifications[0].Type)
	assert.Equal(t, "系统维护公告", list.Notifications[0].Message)

	adminList, err := f.notificationSvc.ListByUser(ctx, "admin")
	require.NoError(t, err)
	assert.Empty(t, adminList.Notifications)
}

func TestNotificationService_Notify_SkipsSelf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 收件人与触发者相同时静默跳过
	err := f.notificationSvc.Notify(ctx, "same", "same", &entities.Notification{
		Type: enums.NotificationTypeAnswer, Message: "m",
	})
	require.NoError(t, err)

	list, err := f.notificationSvc.ListByUser(ctx, "same")
	require.NoError(t, err)
	assert.Empty(t, list.Notifications)

	// 不同用户时正常落库
	err = f.notificationSvc.Notify(ctx, "recipient", "actor", &entities.Notification{
		Type: enums.NotificationTypeAnswer, Message: "m",
	})
	require.NoError(t, err)

	list, err = f.notificationSvc.ListByUser(ctx, "recipient")
	require.NoError(t, err)
	assert.Len(t, list.Notifications, 1)
}
