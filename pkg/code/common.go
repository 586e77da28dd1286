package code

var (
	Success = NewSuss(1, lang{en: "Success", zh_cn: "成功"})
	Failed  = NewError(0, lang{en: "Failed", zh_cn: "失败"})

	ErrorServerInternal   = NewError(500, lang{en: "Internal server error", zh_cn: "服务器内部错误"})
	ErrorNotFoundAPI      = NewError(404, lang{en: "API not found", zh_cn: "找不到接口"})
	ErrorInvalidParams    = NewError(405, lang{en: "Invalid parameters", zh_cn: "参数错误"})
	ErrorTooManyRequests  = NewError(429, lang{en: "Too many requests", zh_cn: "请求过多"})
	ErrorRequestTimeout   = NewError(408, lang{en: "Request timeout", zh_cn: "请求超时"})
	ErrorServiceShutdown  = NewError(503, lang{en: "Service is shutting down", zh_cn: "服务正在关闭"})
	ErrorWorkerPoolBusy   = NewError(504, lang{en: "Server is busy, try again later", zh_cn: "服务繁忙，请稍后再试"})
	ErrorNotUserAuthToken = NewError(505, lang{en: "Sign-in required", zh_cn: "请先登录"})

	ErrorInvalidUserAuthToken = NewError(506, lang{en: "Invalid or expired sign-in token", zh_cn: "登录凭证无效或已过期"})
	ErrorTokenGenerateFailed  = NewError(507, lang{en: "Failed to generate token", zh_cn: "生成 Token 失败"})

	// 笔记
	ErrorNoteListFailed   = NewError(1001, lang{en: "Failed to fetch notes", zh_cn: "获取笔记列表失败"})
	ErrorNoteCreateFailed = NewError(1002, lang{en: "Failed to create note", zh_cn: "创建笔记失败"})
	ErrorNoteDeleteFailed = NewError(1003, lang{en: "Failed to delete note", zh_cn: "删除笔记失败"})
	ErrorNoteNotFound     = NewError(1004, lang{en: "Note not found", zh_cn: "笔记不存在"})

	// 图片 / 存储
	ErrorImageUploadFailed    = NewError(1101, lang{en: "Failed to upload image", zh_cn: "图片上传失败"})
	ErrorImageResolveFailed   = NewError(1102, lang{en: "Failed to resolve image URL", zh_cn: "获取图片地址失败"})
	ErrorImageRemoveFailed    = NewError(1103, lang{en: "Failed to remove image", zh_cn: "删除图片失败"})
	ErrorInvalidStorageType   = NewError(1104, lang{en: "Invalid storage type", zh_cn: "无效的存储类型"})
	ErrorStorageNotConfigured = NewError(1105, lang{en: "Object storage is not configured", zh_cn: "对象存储未配置"})

	// 远程接口
	ErrorGraphQLRequestFailed = NewError(1201, lang{en: "Remote API request failed", zh_cn: "远程接口请求失败"})
	ErrorGraphQLUnknownOp     = NewError(1202, lang{en: "Unknown GraphQL operation", zh_cn: "未知的 GraphQL 操作"})
	ErrorGraphQLUnauthorized  = NewError(1203, lang{en: "Invalid API key", zh_cn: "API Key 无效"})
)
