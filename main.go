package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Yhrjkcz1/COS/api"
	"github.com/Yhrjkcz1/COS/config"
	"github.com/Yhrjkcz1/COS/internal/logger"
	"github.com/Yhrjkcz1/COS/internal/report"
	"github.com/Yhrjkcz1/COS/internal/requests"
	"github.com/Yhrjkcz1/COS/internal/schedulers"
)

func main() {
	processesFile := flag.String("processes", "", "CSV file (id,arrival,burst[,priority]); prints a report instead of serving")
	algorithm := flag.String("algorithm", "all", "fcfs, sjf, srtf, priority, rr or all")
	quantum := flag.Int("quantum", 0, "round robin time quantum (0 = configured default)")
	flag.Parse()

	cfg := config.GetSchedulerConfig()
	log := logger.BuildLogger(cfg.LogLevel)
	slog.SetDefault(log)

	if *processesFile != "" {
		if err := runReport(os.Stdout, cfg, *processesFile, *algorithm, *quantum); err != nil {
			log.Error("report failed", logger.ErrAttr(err))
			os.Exit(1)
		}
		return
	}

	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, log))
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("scheduler api listening", slog.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Error("server stopped", logger.ErrAttr(err))
		os.Exit(1)
	}
}

func runReport(w io.Writer, cfg *config.SchedulerConfig, path, algorithm string, quantum int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	jobs, err := requests.LoadJobs(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	request := requests.ScheduleRequests{Jobs: jobs, TimeQuantum: quantum}

	if strings.EqualFold(algorithm, "all") {
		timeQuanta := cfg.ComparisonTimeQuanta
		if quantum != 0 {
			timeQuanta = []int{quantum}
		}
		comparisons, err := schedulers.Compare(request.Processes(), timeQuanta)
		if err != nil {
			return err
		}
		report.WriteComparison(w, comparisons)
		return nil
	}

	a, err := schedulers.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}
	if quantum == 0 {
		quantum = cfg.RoundRobinTimeQuantum
	}
	processes := request.Processes()
	result, err := schedulers.Schedule(processes, schedulers.Policy{Algorithm: a, TimeQuantum: quantum})
	if err != nil {
		return err
	}
	report.WriteSchedule(w, processes, result)
	return nil
}
