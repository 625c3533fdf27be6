package controller

import (
	"fmt"

	"advisor-portal-be/internal/dto"
	"advisor-portal-be/internal/pkg/serverutils"
	"advisor-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IIdeaController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	DevPackage(ctx *fiber.Ctx) error
	DownloadDevPackage(ctx *fiber.Ctx) error
	DeleteDevPackage(ctx *fiber.Ctx) error
}

type ideaController struct {
	ideaService service.IIdeaService
}

func NewIdeaController(ideaService service.IIdeaService) IIdeaController {
	return &ideaController{
		ideaService: ideaService,
	}
}

func (c *ideaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/idea/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)

	a := r.Group("/advisor/v1")
	a.Use(serverutils.JwtMiddleware)
	a.Use(requireAdvisor)
	a.Post("projects/:projectId/dev-package", c.DevPackage)
	a.Get("dev-package/:fileId", c.DownloadDevPackage)
	a.Delete("dev-package/:fileId", c.DeleteDevPackage)
}

func requireAdvisor(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != "advisor" {
		return ctx.Status(fiber.StatusForbidden).
			JSON(serverutils.ErrorResponse(fiber.StatusForbidden, "Advisor access required"))
	}
	return ctx.Next()
}

func (c *ideaController) Create(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateIdeaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ideaService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create idea", res))
}

func (c *ideaController) List(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.ideaService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list ideas", res))
}

func (c *ideaController) Show(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	role, _ := ctx.Locals("role").(string)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid idea id")
	}

	res, err := c.ideaService.Show(ctx.Context(), userId, role, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show idea", res))
}

func (c *ideaController) Update(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid idea id")
	}

	var req dto.UpdateIdeaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ideaService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update idea", res))
}

func (c *ideaController) DevPackage(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	projectId, err := uuid.Parse(ctx.Params("projectId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid project id")
	}

	res, err := c.ideaService.DevPackage(ctx.Context(), userId, projectId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate dev package", res))
}

func (c *ideaController) DownloadDevPackage(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	fileId, err := uuid.Parse(ctx.Params("fileId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid file id")
	}

	file, err := c.ideaService.DownloadDevPackage(ctx.Context(), userId, fileId)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, file.MimeType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.OriginalName))
	return ctx.Send(file.Content)
}

func (c *ideaController) DeleteDevPackage(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	fileId, err := uuid.Parse(ctx.Params("fileId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid file id")
	}

	if err := c.ideaService.DeleteDevPackage(ctx.Context(), userId, fileId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete dev package", nil))
}
