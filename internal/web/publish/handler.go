package publish

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	"gitee.com/flycash/publish-gateway/internal/service/batch"
	publishsvc "gitee.com/flycash/publish-gateway/internal/service/publish"
	"gitee.com/flycash/publish-gateway/internal/service/tenant"
	"gitee.com/flycash/publish-gateway/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	tenantKey = "tenant"
	// 批量上传的大小上限
	maxBulkBodySize = 8 << 20
)

type Handler struct {
	svc      publishsvc.Service
	ingestor *batch.Ingestor
	auth     tenant.Authenticator
	logger   *elog.Component
}

func NewHandler(svc publishsvc.Service, ingestor *batch.Ingestor, auth tenant.Authenticator) *Handler {
	return &Handler{
		svc:      svc,
		ingestor: ingestor,
		auth:     auth,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/v1/projects/:reference", h.Authenticate)
	g.POST("/services/:service/messages", h.Publish)
	g.POST("/services/:service/bulk", h.BulkPublish)
	g.GET("/logs/:sid", h.FindLog)
	g.PUT("/logs/:sid/status", h.UpdateStatus)
}

// Authenticate HTTP Basic，用户名为 account sid，密码为 auth token
func (h *Handler) Authenticate(ctx *gin.Context) {
	accountSid, authToken, ok := ctx.Request.BasicAuth()
	if !ok {
		ctx.Header("WWW-Authenticate", `Basic realm="publish-gateway"`)
		h.abort(ctx, fmt.Errorf("%w: 缺少 API key", errs.ErrUnauthorized))
		return
	}
	t, err := h.auth.Authenticate(ctx.Request.Context(), accountSid, authToken, ctx.Param("reference"))
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.Set(tenantKey, t)
	ctx.Next()
}

func (h *Handler) Publish(ctx *gin.Context) {
	var req PublishReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.abort(ctx, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err))
		return
	}
	log, err := h.svc.Publish(ctx.Request.Context(), domain.PublishCommand{
		ServiceKind:      domain.ServiceKind(ctx.Param("service")),
		ProjectReference: ctx.Param("reference"),
		Tenant:           h.tenant(ctx),
		Request: domain.SendRequest{
			Recipient:        strings.TrimSpace(req.To),
			Body:             req.Body,
			ClientSuppliedID: strings.TrimSpace(req.Sid),
		},
	})
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, web.Result{Msg: "OK", Data: newDeliveryLog(log)})
}

// BulkPublish 立即返回每一项的受理结果，发送在后台进行
func (h *Handler) BulkPublish(ctx *gin.Context) {
	cmd := domain.PublishCommand{
		ServiceKind:      domain.ServiceKind(ctx.Param("service")),
		ProjectReference: ctx.Param("reference"),
		Tenant:           h.tenant(ctx),
	}
	if !cmd.ServiceKind.Supported() {
		h.abort(ctx, fmt.Errorf("%w: %q", errs.ErrUnsupportedService, cmd.ServiceKind))
		return
	}

	contentType, body, err := h.readBulkBody(ctx)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	items, err := batch.Parse(contentType, body)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ack, err := h.ingestor.Submit(ctx.Request.Context(), cmd, items)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, web.Result{Msg: "OK", Data: ack})
}

// readBulkBody 支持直接提交 JSON/CSV，或者 multipart 上传 file 字段
func (h *Handler) readBulkBody(ctx *gin.Context) (string, []byte, error) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBulkBodySize)
	if !strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
		}
		return ctx.ContentType(), body, nil
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}
	file, err := header.Open()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}
	contentType := header.Header.Get("Content-Type")
	switch {
	case strings.EqualFold(filepath.Ext(header.Filename), ".csv"):
		contentType = "text/csv"
	case contentType == "application/octet-stream":
		// 按 JSON 解析
		contentType = ""
	}
	return contentType, body, nil
}

func (h *Handler) FindLog(ctx *gin.Context) {
	log, err := h.svc.Find(ctx.Request.Context(), h.tenant(ctx), ctx.Param("sid"))
	if err != nil {
		h.abort(ctx, err)
		return
	}
	if log.ProjectReference != ctx.Param("reference") {
		h.abort(ctx, fmt.Errorf("%w: %s", errs.ErrDeliveryLogNotFound, ctx.Param("sid")))
		return
	}
	ctx.JSON(http.StatusOK, web.Result{Msg: "OK", Data: newDeliveryLog(log)})
}

// UpdateStatus 投递回执
func (h *Handler) UpdateStatus(ctx *gin.Context) {
	var req UpdateStatusReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.abort(ctx, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err))
		return
	}
	status := domain.LogStatus(strings.ToLower(req.Status))
	if !status.IsTerminal() {
		h.abort(ctx, fmt.Errorf("%w: status = %q", errs.ErrInvalidParameter, req.Status))
		return
	}
	log, err := h.svc.UpdateStatus(ctx.Request.Context(), h.tenant(ctx), ctx.Param("sid"), status, req.Reason)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, web.Result{Msg: "OK", Data: newDeliveryLog(log)})
}

func (h *Handler) tenant(ctx *gin.Context) domain.Tenant {
	val, _ := ctx.Get(tenantKey)
	t, _ := val.(domain.Tenant)
	return t
}

func (h *Handler) abort(ctx *gin.Context, err error) {
	code, res := web.ErrorResult(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("请求处理失败",
			elog.String("path", ctx.FullPath()),
			elog.FieldErr(err))
	}
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(code, res)
}
