package constant

// 服务标识，用于链路追踪与日志归属。
const (
	ServiceName    = "qa_service"
	ServiceVersion = "1.0.0"
)
