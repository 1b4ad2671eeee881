package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrForbidden 表示调用者既不是资源作者也不是管理员，无权执行该操作 (403)
var ErrForbidden = errors.New("caller is not the owner or an admin")

// ErrSelfVote 表示用户试图给自己的内容投票 (400)，票数保持不变
var ErrSelfVote = errors.New("cannot vote on your own content")

// ErrAnswerMismatch 表示回答不属于指定的问题 (400)
var ErrAnswerMismatch = errors.New("answer does not belong to this question")

// ErrUserBanned 表示被封禁用户尝试发布内容 (403)
// 封禁只限制发布问题/回答，浏览、投票与通知不受影响
var ErrUserBanned = errors.New("user is banned from creating content")

// ErrAdminNotBannable 表示管理员账号不允许被封禁 (400)
var ErrAdminNotBannable = errors.New("cannot ban admin users")
