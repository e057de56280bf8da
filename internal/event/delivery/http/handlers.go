package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"brme/internal/event"
	"brme/internal/model"
	"brme/pkg/datemath"
	"brme/pkg/ics"
	"brme/pkg/response"
)

// Resolve godoc
// @Summary     Resolve an event sentence
// @Description Turns a Portuguese sentence such as "amanhã 14h reunião" into an event with start/end timestamps. Nothing is stored.
// @Tags        Events
// @Accept      json
// @Produce     json,text/calendar
// @Param       body   body  resolveReq true  "Sentence and optional RFC3339 base date"
// @Param       format query string     false "Set to ics for an iCalendar document"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Estimator unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Resolve(ctx, httpScope(c), input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Resolve: %v", err)
		h.writeError(c, err)
		return
	}

	if req.Format == formatICS {
		h.writeICS(c, output)
		return
	}

	response.OK(c, h.newResolveResp(output))
}

// Create godoc
// @Summary     Create a calendar event from a sentence
// @Description Resolves the sentence and inserts it into Google Calendar.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Sentence, optional base date and calendar"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Estimator or calendar unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, httpScope(c), input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

func (h *handler) writeICS(c *gin.Context, out event.ResolveOutput) {
	start, err := datemath.ParseTimestamp(out.Event.Start, time.UTC)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	end, err := datemath.ParseTimestamp(out.Event.End, time.UTC)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	body, err := ics.Encode(h.now(), ics.Event{
		Summary:     out.Event.Title,
		Description: out.Event.Notes,
		Location:    out.Event.Location,
		Start:       start,
		End:         end,
	})
	if err != nil {
		response.InternalError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="evento.ics"`)
	c.Data(http.StatusOK, ics.ContentType, []byte(body))
}

func httpScope(c *gin.Context) model.Scope {
	return model.Scope{
		UserID: c.ClientIP(),
		Source: model.SourceHTTP,
	}
}
