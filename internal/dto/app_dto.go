package dto

// SignInRequest 登录表单
type SignInRequest struct {
	Token string `form:"token" json:"token" binding:"required"`
}

// HealthDTO 健康检查响应
type HealthDTO struct {
	Status    string  `json:"status"`  // "healthy" 或 "unhealthy"
	Version   string  `json:"version"` // 服务版本号
	GraphQL   string  `json:"graphql"` // "connected" 或 "error"
	Storage   string  `json:"storage"` // 存储类型
	Sessions  int     `json:"sessions"`
	Uptime    float64 `json:"uptime"` // 运行时间（秒）
	Timestamp string  `json:"timestamp"`
}

// VersionDTO 版本信息响应
type VersionDTO struct {
	Version        string `json:"version"`
	GitTag         string `json:"gitTag"`
	BuildTime      string `json:"buildTime"`
	VersionIsNew   bool   `json:"versionIsNew"`
	VersionNewName string `json:"versionNewName,omitempty"`
	VersionNewLink string `json:"versionNewLink,omitempty"`
}
