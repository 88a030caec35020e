package api

import (
	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/monitoring"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	CompareAll(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	monitor *monitoring.Monitor
}

// NewSchedulerHandlerImpl returns the fiber handler for all scheduling
// endpoints. monitor may be nil to disable metric recording (e.g. in tests).
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, monitor *monitoring.Monitor) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, monitor: monitor}
}

// parseRequest decodes and validates the request body. On failure it writes
// the error response and returns false.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequest, bool) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		s.rejected(ctx, "invalid request format")
		return request, false
	}
	if err := request.Validate(); err != nil {
		s.rejected(ctx, err.Error())
		return request, false
	}
	return request, true
}

func (s *SchedulerHandlerImpl) rejected(ctx *fiber.Ctx, msg string) {
	if s.monitor != nil {
		s.monitor.ObserveRequestError()
	}
	_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// quantum returns the request's time quantum, falling back to the configured
// default when the request omits it.
func (s *SchedulerHandlerImpl) quantum(request requests.ScheduleRequest) int {
	if request.TimeQuantum > 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) respond(ctx *fiber.Ctx, result core.Result) error {
	if s.monitor != nil {
		s.monitor.ObserveRun(result.Algorithm)
	}
	return ctx.JSON(responses.FromResult(result))
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	return s.respond(ctx, schedulers.FirstComeFirstServe(request.ProcessSet()))
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	return s.respond(ctx, schedulers.ShortestJobFirst(request.ProcessSet()))
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	return s.respond(ctx, schedulers.PriorityNonPreemptive(request.ProcessSet()))
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	return s.respond(ctx, schedulers.RoundRobin(request.ProcessSet(), s.quantum(request)))
}

func (s *SchedulerHandlerImpl) CompareAll(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	ranked, err := schedulers.CompareAll(request.ProcessSet(), s.quantum(request))
	if err != nil {
		s.rejected(ctx, err.Error())
		return nil
	}
	if s.monitor != nil {
		s.monitor.ObserveComparison()
	}
	return ctx.JSON(responses.FromResults(ranked))
}
