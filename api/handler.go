package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Yhrjkcz1/COS/config"
	"github.com/Yhrjkcz1/COS/internal/logger"
	"github.com/Yhrjkcz1/COS/internal/requests"
	"github.com/Yhrjkcz1/COS/internal/responses"
	"github.com/Yhrjkcz1/COS/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	log    *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, log: log}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityScheduling)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return s.badRequest(ctx, err)
	}

	timeQuanta := s.config.ComparisonTimeQuanta
	if request.TimeQuantum != 0 {
		timeQuanta = []int{request.TimeQuantum}
	}

	comparisons, err := schedulers.Compare(request.Processes(), timeQuanta)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := responses.ComparisonResponse{Results: make([]responses.ScheduleResponse, 0, len(comparisons))}
	for _, c := range comparisons {
		response.Results = append(response.Results, schedulers.GenerateResponse(c.Processes, c.Result))
	}
	s.log.Info("comparison completed",
		slog.Int("processes", len(request.Jobs)),
		slog.Any("time_quanta", timeQuanta),
		slog.Int("runs", len(comparisons)),
	)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return s.badRequest(ctx, err)
	}

	policy := schedulers.Policy{Algorithm: algorithm, TimeQuantum: request.TimeQuantum}
	if algorithm == schedulers.RoundRobin && policy.TimeQuantum == 0 {
		policy.TimeQuantum = s.config.RoundRobinTimeQuantum
	}

	processes := request.Processes()
	result, err := schedulers.Schedule(processes, policy)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.log.Info("schedule completed",
		slog.String("algorithm", algorithm.String()),
		slog.Int("time_quantum", result.Policy.TimeQuantum),
		slog.Int("processes", len(processes)),
		slog.Int("makespan", result.Makespan()),
		slog.Int("context_switches", result.ContextSwitches),
	)
	return ctx.JSON(schedulers.GenerateResponse(processes, result))
}

func (s *SchedulerHandlerImpl) badRequest(ctx *fiber.Ctx, err error) error {
	s.log.Debug("invalid request format", logger.ErrAttr(err))
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	var inputErr *schedulers.InvalidInputError
	if errors.As(err, &inputErr) {
		s.log.Warn("rejected schedule request", logger.ErrAttr(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{
			Error:     err.Error(),
			Rule:      inputErr.Rule,
			ProcessId: inputErr.ProcessID,
		})
	}

	s.log.Error("can not process request", logger.ErrAttr(err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(responses.ErrorResponse{Error: "can not process request"})
}
