package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldUID 用户 ID 字段
	FieldUID = "uid"

	// FieldAction 操作类型字段
	FieldAction = "action"

	// FieldNoteID 笔记 ID 字段
	FieldNoteID = "noteId"

	// FieldNoteName 笔记名称字段，同时也是图片对象的键
	FieldNoteName = "noteName"

	// FieldOperation GraphQL operationName
	FieldOperation = "operation"

	// FieldKey 存储对象键字段
	FieldKey = "key"

	// FieldBucket 存储桶名称字段
	FieldBucket = "bucket"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldError 错误信息字段
	FieldError = "error"

	// FieldCount 数量字段
	FieldCount = "count"
)
