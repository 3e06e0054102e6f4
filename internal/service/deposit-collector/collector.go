package collector

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ledgerkeep/walletd/internal/model"
	"golang.org/x/sync/errgroup"
)

const (
	clientTimeout           = 5 * time.Second
	getPaymentURL           = "/api/payments/"
	defaultRetryAfterPeriod = "60"
)

// Processor-side payment states.
const (
	paymentProcessing = "PROCESSING"
	paymentConfirmed  = "CONFIRMED"
	paymentRejected   = "REJECTED"
	paymentRegistered = "REGISTERED"
)

//go:generate mockgen -destination ./mocks/collector_repo.go . CollectorRepository
type CollectorRepository interface {
	ConfirmDeposit(ctx context.Context, id int, amount model.Amount) error
	RejectDeposit(ctx context.Context, id int) error
	GetPendingBatch(ctx context.Context, batchSize int) ([]model.Deposit, error)
}

type PaymentResponse struct {
	Reference string       `json:"reference"`
	Status    string       `json:"status"`
	Amount    model.Amount `json:"amount,omitempty"`
}

type Collector struct {
	PollInterval time.Duration
	Client       *resty.Client

	repo        CollectorRepository
	nextAllowed atomic.Int64

	WorkersNum int
	BatchSize  int
}

func NewCollector(
	processorAddress string,
	interval time.Duration,

	repo CollectorRepository,
) *Collector {
	client := resty.New()

	client.
		SetTimeout(clientTimeout).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetBaseURL(processorAddress)

	c := &Collector{
		PollInterval: interval,
		Client:       client,
		repo:         repo,
		BatchSize:    10,
		WorkersNum:   3,
	}
	c.nextAllowed.Store(time.Now().UnixNano())

	return c
}

func (c *Collector) Run(ctx context.Context) error {
	tick := time.NewTicker(c.PollInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if ctx.Err() != nil {
				continue
			}

			if time.Now().UnixNano() < c.nextAllowed.Load() {
				continue
			}

			slog.Debug("fetching payment confirmations")
			if err := c.processDeposits(ctx); err != nil {
				return fmt.Errorf("collector error: %w", err)
			}
		}
	}
}

func (c *Collector) processDeposits(ctx context.Context) error {
	deposits, err := c.repo.GetPendingBatch(ctx, c.BatchSize)
	if err != nil {
		return err
	}
	slog.Debug("fetched pending deposits", slog.Int("count", len(deposits)))
	if len(deposits) == 0 {
		return nil
	}

	jobs := make(chan model.Deposit, c.BatchSize)
	worker := func() error {
		for j := range jobs {
			if ctx.Err() != nil {
				return nil
			}

			if time.Now().UnixNano() < c.nextAllowed.Load() {
				return nil
			}

			if err := c.handleDeposit(ctx, &j); err != nil {
				return err
			}
		}

		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < c.WorkersNum; i++ {
		g.Go(func() error {
			return worker()
		})
	}

Loop:
	for _, d := range deposits {
		if ctx.Err() != nil {
			break
		}

		if time.Now().UnixNano() < c.nextAllowed.Load() {
			break
		}
		select {
		case jobs <- d:
		case <-ctx.Done():
			break Loop
		}
	}

	close(jobs)
	if err := g.Wait(); err != nil {
		return err
	}

	return nil
}

func (c *Collector) handleDeposit(
	ctx context.Context,
	deposit *model.Deposit,
) error {
	if time.Now().UnixNano() < c.nextAllowed.Load() {
		return nil
	}

	slog.Info(
		"checking deposit",
		slog.String("reference", deposit.Reference),
	)

	var respBody PaymentResponse
	resp, err := c.Client.R().
		SetContext(ctx).
		SetResult(&respBody).
		Get(getPaymentURL + deposit.Reference)
	if err != nil {
		slog.Error("failed to request processor", slog.Any("error", err))
		return fmt.Errorf("failed to request processor: %w", err)
	}

	sc := resp.StatusCode()
	if sc != http.StatusOK {
		switch sc {
		case http.StatusNoContent:
			slog.Info(
				"payment is not registered in processor",
				slog.String("reference", deposit.Reference),
			)
			return nil
		case http.StatusTooManyRequests:
			periodRaw := strings.TrimSpace(resp.Header().Get("Retry-After"))
			if periodRaw == "" {
				periodRaw = defaultRetryAfterPeriod
			}
			period, err := strconv.Atoi(periodRaw)
			if err != nil {
				slog.Error(
					"failed to get retry period from header, setting default",
					slog.String("header_value", periodRaw),
					slog.String("default_value", defaultRetryAfterPeriod),
				)
				period, _ = strconv.Atoi(defaultRetryAfterPeriod)
			}

			d := time.Duration(period) * time.Second
			c.setRetryAfter(d)
			slog.Info(
				"too many requests to processor, setting retry-after",
				slog.Duration("period", d),
			)

			return nil
		default:
			slog.Error(
				"failed to request processor",
				slog.Int("http_code", sc),
			)
			return fmt.Errorf("failed to request processor, http_code=%d", sc)
		}
	}

	switch respBody.Status {
	case paymentConfirmed:
		if err := c.repo.ConfirmDeposit(
			ctx,
			deposit.ID,
			respBody.Amount,
		); err != nil {
			slog.Error("failed to confirm deposit", slog.Any("error", err))
			return fmt.Errorf("failed to confirm deposit: %w", err)
		}
	case paymentRejected:
		if err := c.repo.RejectDeposit(ctx, deposit.ID); err != nil {
			slog.Error("failed to reject deposit", slog.Any("error", err))
			return fmt.Errorf("failed to reject deposit: %w", err)
		}
	case paymentProcessing, paymentRegistered:
		// still pending on the processor side, check again next tick
	default:
		slog.Error(
			"unknown payment status",
			slog.String("status", respBody.Status),
		)
		return fmt.Errorf("unknown payment status")
	}

	return nil
}

func (c *Collector) setRetryAfter(d time.Duration) {
	c.nextAllowed.Store(time.Now().Add(d).UnixNano())
}
