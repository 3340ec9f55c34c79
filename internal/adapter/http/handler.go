package http

import (
	"context"
	"log/slog"
	"sync"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	resumes   *usecase.ResumeService
	previews  *usecase.PreviewService
	processor *usecase.Processor
	credits   *usecase.CreditService
	ai        *usecase.AIService

	// jobs tracks background compilations so shutdown can wait for them.
	jobs sync.WaitGroup
}

func NewHandler(resumes *usecase.ResumeService, previews *usecase.PreviewService, p *usecase.Processor, credits *usecase.CreditService, gen *usecase.AIService) *Handler {
	return &Handler{resumes: resumes, previews: previews, processor: p, credits: credits, ai: gen}
}

// Wait blocks until every started job has finished.
func (h *Handler) Wait() {
	h.jobs.Wait()
}

type resumeReq struct {
	Template string             `json:"template"`
	Values   model.ResumeValues `json:"values"`
}

type templateReq struct {
	Template string `json:"template"`
}

type redeemReq struct {
	Code string `json:"code"`
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	return nil
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	list, err := h.resumes.Templates(c.UserContext(), userID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"templates": list})
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	list, err := h.resumes.List(c.UserContext(), userID(c))
	if err != nil {
		return err
	}
	if list == nil {
		list = []domain.Resume{}
	}
	return c.JSON(fiber.Map{"resumes": list})
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var req resumeReq
	if err := bind(c, &req); err != nil {
		return err
	}
	r, err := h.resumes.Create(c.UserContext(), userID(c), req.Template, req.Values)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	r, err := h.resumes.Get(c.UserContext(), userID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var values model.ResumeValues
	if err := bind(c, &values); err != nil {
		return err
	}
	r, err := h.resumes.Update(c.UserContext(), userID(c), id, values)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.resumes.Delete(c.UserContext(), userID(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) SwitchTemplate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req templateReq
	if err := bind(c, &req); err != nil {
		return err
	}
	r, err := h.resumes.SwitchTemplate(c.UserContext(), userID(c), id, req.Template)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) Customize(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var patch usecase.CustomizationPatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	r, err := h.resumes.Customize(c.UserContext(), userID(c), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) ResetCustomization(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	r, err := h.resumes.ResetCustomization(c.UserContext(), userID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req usecase.PreviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.previews.Preview(c.UserContext(), userID(c), id, req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// StartJob enqueues a PDF compilation and runs it in the background.
func (h *Handler) StartJob(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	job, err := h.processor.Enqueue(c.UserContext(), userID(c), id)
	if err != nil {
		return err
	}
	resp := fiber.Map{"jobId": job.ID.String(), "status": job.Status}

	h.jobs.Add(1)
	go func(j *domain.RenderJob) {
		defer h.jobs.Done()
		if err := h.processor.Process(context.Background(), j); err != nil {
			slog.Warn("render job did not complete", "job", j.ID, "error", err)
		}
	}(job)

	return c.Status(fiber.StatusAccepted).JSON(resp)
}

func (h *Handler) GetJob(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	j, err := h.processor.Job(c.UserContext(), userID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(j)
}

func (h *Handler) Credits(c *fiber.Ctx) error {
	acct, err := h.credits.Account(c.UserContext(), userID(c))
	if err != nil {
		return err
	}
	return c.JSON(acct)
}

func (h *Handler) Redeem(c *fiber.Ctx) error {
	var req redeemReq
	if err := bind(c, &req); err != nil {
		return err
	}
	acct, err := h.credits.Redeem(c.UserContext(), userID(c), req.Code)
	if err != nil {
		return err
	}
	return c.JSON(acct)
}

func (h *Handler) CreditLogs(c *fiber.Ctx) error {
	logs, err := h.credits.Logs(c.UserContext(), userID(c), c.QueryInt("limit", 50))
	if err != nil {
		return err
	}
	if logs == nil {
		logs = []domain.CreditLog{}
	}
	return c.JSON(fiber.Map{"logs": logs})
}

func (h *Handler) Generate(c *fiber.Ctx) error {
	var req ai.Request
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.ai.Generate(c.UserContext(), userID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
