package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"

	"advisor-portal-be/internal/constant"
	"advisor-portal-be/internal/dto"
	"advisor-portal-be/internal/pkg/serverutils"
	"advisor-portal-be/internal/service"
	"advisor-portal-be/pkg/ai/ideator"
	"advisor-portal-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

type IIdeatorController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	PublicStart(ctx *fiber.Ctx) error
	PublicChat(ctx *fiber.Ctx) error
}

type ideatorController struct {
	ideatorService service.IIdeatorService
	public         *ideator.PublicOrchestrator
}

func NewIdeatorController(
	ideatorService service.IIdeatorService,
	public *ideator.PublicOrchestrator,
) IIdeatorController {
	return &ideatorController{
		ideatorService: ideatorService,
		public:         public,
	}
}

func (c *ideatorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ideator/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("chat", c.Chat)

	p := r.Group("/public-ideator/v1")
	p.Get("start", c.PublicStart)
	p.Post("chat", c.PublicChat)
}

func (c *ideatorController) Chat(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.IdeatorChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	streamCtx, cancel := context.WithCancel(ctx.Context())

	result, err := c.ideatorService.Chat(streamCtx, userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionFinalized) {
			cancel()
			return fiber.NewError(fiber.StatusConflict, "Conversation already finalized")
		}
		if result == nil || result.Final == nil {
			cancel()
			return err
		}
	}

	if result.Final != nil {
		cancel()
		res := finalizeResponse(result.Final)
		if err != nil {
			// The save failed but the artifact is complete. Return it
			// alongside an explicit error so the client does not lose
			// the specification.
			res.Error = "Failed to store specification"
			return ctx.Status(fiber.StatusInternalServerError).JSON(res)
		}
		return ctx.JSON(res)
	}

	setSSEHeaders(ctx)
	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		pumpSSE(w, result.Stream, cancel)
	}))
	return nil
}

func (c *ideatorController) PublicStart(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"response": constant.PublicIdeatorWelcomeMessage,
	})
}

func (c *ideatorController) PublicChat(ctx *fiber.Ctx) error {
	var req dto.PublicChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	streamCtx, cancel := context.WithCancel(ctx.Context())
	events := c.public.HandleTurn(streamCtx, toLLMHistory(req.ConversationHistory), req.Message)

	setSSEHeaders(ctx)
	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		pumpSSE(w, events, cancel)
	}))
	return nil
}

func toLLMHistory(turns []dto.ChatTurnDto) []llm.Message {
	messages := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, llm.Message{Role: t.Role, Content: t.Content})
	}
	return messages
}

func finalizeResponse(final *ideator.FinalizeResult) dto.IdeatorFinalizeResponse {
	res := dto.IdeatorFinalizeResponse{
		Response:        final.Response,
		Complete:        true,
		SpecificationId: final.SpecificationID,
	}
	if encoded, err := json.Marshal(final.Artifact); err == nil {
		var specMap map[string]interface{}
		if json.Unmarshal(encoded, &specMap) == nil {
			res.Specification = specMap
		}
	}
	return res
}

func setSSEHeaders(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderContentType, "text/event-stream")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Set(fiber.HeaderConnection, "keep-alive")
}

// pumpSSE writes events until the stream closes or the client stops
// reading. A failed write cancels the producing context so upstream
// provider calls are aborted instead of streaming into the void.
func pumpSSE[T any](w *bufio.Writer, events <-chan T, cancel context.CancelFunc) {
	defer cancel()
	for event := range events {
		if err := writeSSEFrame(w, event); err != nil {
			cancel()
			for range events {
			}
			return
		}
	}
}

func writeSSEFrame(w *bufio.Writer, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := w.WriteString("data: " + string(payload) + "\n\n"); err != nil {
		return err
	}
	return w.Flush()
}
