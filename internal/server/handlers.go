package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/export"
	"github.com/alexanderramin/outreach/internal/latex"
	"github.com/alexanderramin/outreach/internal/llm"
	"github.com/alexanderramin/outreach/internal/repository"
	"github.com/alexanderramin/outreach/internal/service"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Code   int      `json:"code"`
	Fields []string `json:"fields,omitempty"`
}

// DocumentResponse is a generated document as returned by the API.
type DocumentResponse struct {
	Type      domain.DocumentKind `json:"type"`
	Subject   string              `json:"subject"`
	Body      string              `json:"body"`
	Text      string              `json:"text"`
	HistoryID string              `json:"historyId,omitempty"`
	Warning   string              `json:"warning,omitempty"`
}

type templateRequest struct {
	Name string            `json:"name" binding:"required"`
	Data domain.JobRequest `json:"data"`
}

type resumeRequest struct {
	LaTeX   string `json:"latex"`
	Request string `json:"request"`
}

type resumeEditResponse struct {
	LaTeX          string `json:"latex,omitempty"`
	Clarification  string `json:"clarification,omitempty"`
	EstimatedPages int    `json:"estimatedPages"`
}

type exportRequest struct {
	domain.GeneratedDocument
	From string `json:"from"`
	To   string `json:"to"`
}

// statusFor maps an error onto an HTTP status.
func statusFor(err error) int {
	var vErr *domain.ValidationError
	var cErr *latex.CompileError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, llm.ErrMissingAPIKey):
		return http.StatusServiceUnavailable
	case errors.Is(err, llm.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &cErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, llm.ErrEmptyResponse), errors.Is(err, llm.ErrMalformedResponse),
		errors.Is(err, llm.ErrAPI), errors.Is(err, llm.ErrUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	code := statusFor(err)
	resp := ErrorResponse{Error: service.UserMessage(err), Code: code}
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		resp.Fields = vErr.Fields
	}
	if code >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(code, resp)
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error: fmt.Sprintf("invalid request body: %v", err),
		Code:  http.StatusBadRequest,
	})
}

func toDocumentResponse(res *service.GenerationResult) DocumentResponse {
	out := DocumentResponse{
		Type:    res.Document.Kind,
		Subject: res.Document.Subject,
		Body:    res.Document.Body,
		Text:    res.Document.Text(),
	}
	if res.Entry != nil {
		out.HistoryID = res.Entry.ID
	}
	if res.SaveErr != nil {
		out.Warning = service.UserMessage(res.SaveErr)
	}
	return out
}

func (s *Server) generateReferral(c *gin.Context) {
	s.generate(c, func(g service.GenerationService, req domain.JobRequest) (*service.GenerationResult, error) {
		return g.GenerateReferral(c.Request.Context(), req)
	})
}

func (s *Server) generateCoverLetter(c *gin.Context) {
	s.generate(c, func(g service.GenerationService, req domain.JobRequest) (*service.GenerationResult, error) {
		return g.GenerateCoverLetter(c.Request.Context(), req)
	})
}

func (s *Server) generate(c *gin.Context, run func(service.GenerationService, domain.JobRequest) (*service.GenerationResult, error)) {
	if s.svc.Generation == nil {
		fail(c, llm.ErrMissingAPIKey)
		return
	}
	var req domain.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := run(s.svc.Generation, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toDocumentResponse(res))
}

func (s *Server) getProfile(c *gin.Context) {
	p, err := s.svc.Profiles.Get(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) putProfile(c *gin.Context) {
	var p domain.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := s.svc.Profiles.Save(c.Request.Context(), p); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) listHistory(c *gin.Context) {
	f := repository.HistoryFilter{
		Query: c.Query("q"),
		Kind:  domain.DocumentKind(c.Query("type")),
	}
	if f.Kind != "" && !f.Kind.Valid() {
		fail(c, &domain.ValidationError{Fields: []string{"type"}, Message: fmt.Sprintf("unknown document type %q", f.Kind)})
		return
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			fail(c, &domain.ValidationError{Fields: []string{"limit"}, Message: "limit must be a non-negative integer"})
			return
		}
		f.Limit = n
	}
	entries, err := s.svc.History.List(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	if entries == nil {
		entries = []*domain.HistoryEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) getHistory(c *gin.Context) {
	h, err := s.svc.History.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (s *Server) deleteHistory(c *gin.Context) {
	if err := s.svc.History.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) clearHistory(c *gin.Context) {
	n, err := s.svc.History.Clear(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

func (s *Server) listTemplates(c *gin.Context) {
	list, err := s.svc.Templates.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	if list == nil {
		list = []*domain.Template{}
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) saveTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, err := s.svc.Templates.Save(c.Request.Context(), req.Name, req.Data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Server) getTemplate(c *gin.Context) {
	t, err := s.svc.Templates.Get(c.Request.Context(), c.Param("ref"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) deleteTemplate(c *gin.Context) {
	if err := s.svc.Templates.Delete(c.Request.Context(), c.Param("ref")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) editResume(c *gin.Context) {
	if s.svc.Resume == nil {
		fail(c, llm.ErrMissingAPIKey)
		return
	}
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	edit, err := s.svc.Resume.Edit(c.Request.Context(), req.LaTeX, req.Request)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resumeEditResponse{
		LaTeX:          edit.LaTeX,
		Clarification:  edit.Clarification,
		EstimatedPages: latex.EstimatePages(edit.LaTeX),
	})
}

func (s *Server) compileResume(c *gin.Context) {
	if s.svc.Resume == nil {
		fail(c, llm.ErrMissingAPIKey)
		return
	}
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	out, err := s.svc.Resume.Compile(c.Request.Context(), req.LaTeX)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Header("X-Estimated-Pages", strconv.Itoa(out.EstimatedPages))
	c.Data(http.StatusOK, "application/pdf", out.PDF)
}

func (s *Server) exportPDF(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var buf bytes.Buffer
	if err := export.WritePDF(&buf, req.GeneratedDocument); err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(req.GeneratedDocument, "pdf")))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (s *Server) exportEML(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteEML(&buf, req.GeneratedDocument, export.Draft{From: req.From, To: req.To}); err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(req.GeneratedDocument, "eml")))
	c.Data(http.StatusOK, "message/rfc822", buf.Bytes())
}
