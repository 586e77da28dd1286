package mockapi

import (
	"net/http"
	"strings"

	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/internal/middleware"
	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/graphql"
	"github.com/haierkeys/notes-app-service/pkg/logger"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Operation names understood by the mock backend.
const (
	OpListNotes  = "ListNotes"
	OpCreateNote = "CreateNote"
	OpDeleteNote = "DeleteNote"
)

// Server GraphQL 模拟服务
type Server struct {
	store  *Store
	logger *zap.Logger
	engine *gin.Engine
}

// NewServer 创建模拟服务并注册路由
func NewServer(cfg Config, store *Store, lg *zap.Logger) *Server {
	if lg == nil {
		lg = zap.NewNop()
	}
	s := &Server{store: store, logger: lg}

	r := gin.New()
	r.Use(middleware.RecoveryWithLogger(lg))
	r.Use(middleware.AccessLogWithLogger(lg))
	r.POST("/graphql", middleware.APIKeyWithConfig(cfg.APIKey), s.handle)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	s.engine = r
	return s
}

// Handler 返回 http.Handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handle(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		s.fail(c, http.StatusBadRequest, "BadRequest", err.Error())
		return
	}

	var req graphql.Request
	if err := sonic.Unmarshal(body, &req); err != nil {
		s.fail(c, http.StatusBadRequest, "BadRequest", "malformed request body")
		return
	}

	op := resolveOperation(&req)
	s.logger.Debug("mock graphql request", zap.String(logger.FieldOperation, op))

	switch op {
	case OpListNotes:
		s.listNotes(c)
	case OpCreateNote:
		s.createNote(c, input(&req))
	case OpDeleteNote:
		s.deleteNote(c, input(&req))
	default:
		s.fail(c, http.StatusOK, "UnknownOperation", code.ErrorGraphQLUnknownOp.Msg())
	}
}

func (s *Server) listNotes(c *gin.Context) {
	notes, err := s.store.List(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusOK, "DatabaseError", err.Error())
		return
	}
	items := make([]*noteItem, 0, len(notes))
	for _, n := range notes {
		items = append(items, n.toItem())
	}
	s.ok(c, gin.H{"listNotes": gin.H{"items": items, "nextToken": nil}})
}

func (s *Server) createNote(c *gin.Context, in map[string]interface{}) {
	name := stringField(in, "name")
	if name == "" {
		s.fail(c, http.StatusOK, "ValidationError", "input.name is required")
		return
	}

	n, err := s.store.Create(c.Request.Context(), &domain.NoteInput{
		Name:        name,
		Description: stringField(in, "description"),
		Image:       stringField(in, "image"),
	})
	if err != nil {
		s.fail(c, http.StatusOK, "DatabaseError", err.Error())
		return
	}
	s.ok(c, gin.H{"createNote": n.toItem()})
}

func (s *Server) deleteNote(c *gin.Context, in map[string]interface{}) {
	id := stringField(in, "id")
	if id == "" {
		s.fail(c, http.StatusOK, "ValidationError", "input.id is required")
		return
	}

	n, err := s.store.Delete(c.Request.Context(), id)
	if err != nil {
		errType := "DatabaseError"
		if code.ErrorNoteNotFound.Is(err) {
			errType = "ConditionalCheckFailedException"
		}
		s.fail(c, http.StatusOK, errType, err.Error())
		return
	}
	s.ok(c, gin.H{"deleteNote": n.toItem()})
}

func (s *Server) ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (s *Server) fail(c *gin.Context, status int, errType, msg string) {
	c.JSON(status, gin.H{
		"data":   nil,
		"errors": []graphql.Error{{Message: msg, ErrorType: errType}},
	})
}

// resolveOperation prefers operationName and falls back to the root field
// named in the document.
func resolveOperation(req *graphql.Request) string {
	switch req.OperationName {
	case OpListNotes, OpCreateNote, OpDeleteNote:
		return req.OperationName
	}
	switch {
	case strings.Contains(req.Query, "listNotes"):
		return OpListNotes
	case strings.Contains(req.Query, "createNote"):
		return OpCreateNote
	case strings.Contains(req.Query, "deleteNote"):
		return OpDeleteNote
	}
	return req.OperationName
}

func input(req *graphql.Request) map[string]interface{} {
	if in, ok := req.Variables["input"].(map[string]interface{}); ok {
		return in
	}
	return map[string]interface{}{}
}

func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
