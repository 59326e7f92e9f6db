package helper

import (
	"context"
	"court_manager/model"
	"fmt"
	"sort"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CourtOccupancy struct {
	CourtId       uint            `json:"courtId"`
	Reservations  int             `json:"reservations"`
	BookedMinutes int64           `json:"bookedMinutes"`
	Revenue       decimal.Decimal `json:"revenue"`
}

type OccupancyReport struct {
	From    time.Time        `json:"from"`
	To      time.Time        `json:"to"`
	Courts  []CourtOccupancy `json:"courts"`
	Revenue decimal.Decimal  `json:"revenue"`
}

type ReservationRange interface {
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]model.Reservation, error)
}

// BuildOccupancyReport sums reservations per court, ordered by court id.
func BuildOccupancyReport(reservations []model.Reservation, from, to time.Time) OccupancyReport {
	byCourt := map[uint]*CourtOccupancy{}
	report := OccupancyReport{From: from, To: to, Revenue: decimal.Zero}

	for _, r := range reservations {
		occ, ok := byCourt[r.CourtId]
		if !ok {
			occ = &CourtOccupancy{CourtId: r.CourtId, Revenue: decimal.Zero}
			byCourt[r.CourtId] = occ
		}
		occ.Reservations++
		occ.BookedMinutes += DurationMinutes(r.StartTime, r.EndTime)
		occ.Revenue = occ.Revenue.Add(r.Price)
		report.Revenue = report.Revenue.Add(r.Price)
	}

	report.Courts = make([]CourtOccupancy, 0, len(byCourt))
	for _, occ := range byCourt {
		report.Courts = append(report.Courts, *occ)
	}
	sort.Slice(report.Courts, func(i, j int) bool { return report.Courts[i].CourtId < report.Courts[j].CourtId })
	return report
}

type OccupancyReporter struct {
	reservations ReservationRange
	log          *zap.Logger
	loc          *time.Location
	now          func() time.Time
}

func NewOccupancyReporter(reservations ReservationRange, log *zap.Logger, loc *time.Location) *OccupancyReporter {
	return &OccupancyReporter{reservations: reservations, log: log, loc: loc, now: time.Now}
}

// PreviousDay returns [yesterday 00:00, today 00:00) in the reporter's zone.
func (r *OccupancyReporter) PreviousDay() (time.Time, time.Time) {
	now := r.now().In(r.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)
	return today.AddDate(0, 0, -1), today
}

func (r *OccupancyReporter) Run(ctx context.Context) (OccupancyReport, error) {
	from, to := r.PreviousDay()
	reservations, err := r.reservations.FindStartingBetween(ctx, from.UTC(), to.UTC())
	if err != nil {
		return OccupancyReport{}, err
	}
	report := BuildOccupancyReport(reservations, from, to)

	for _, c := range report.Courts {
		r.log.Info("court occupancy",
			zap.Time("day", from),
			zap.Uint("courtId", c.CourtId),
			zap.Int("reservations", c.Reservations),
			zap.Int64("bookedMinutes", c.BookedMinutes),
			zap.String("revenue", c.Revenue.String()),
		)
	}
	r.log.Info("[CRON] occupancy report done",
		zap.Time("day", from),
		zap.Int("courts", len(report.Courts)),
		zap.String("revenue", report.Revenue.String()),
	)
	return report, nil
}

func StartOccupancyReportScheduler(reporter *OccupancyReporter, hour, minute uint) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(reporter.loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(hour, minute, 0),
			),
		),
		gocron.NewTask(func() {
			if _, err := reporter.Run(context.Background()); err != nil {
				reporter.log.Error("[CRON] occupancy report failed", zap.Error(err))
			}
		}),
		gocron.WithName("occupancy-report"),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to schedule occupancy report: %w", err)
	}

	s.Start()
	reporter.log.Info("occupancy report scheduler started",
		zap.String("at", fmt.Sprintf("%02d:%02d", hour, minute)),
		zap.String("timezone", reporter.loc.String()),
	)
	return s, nil
}
