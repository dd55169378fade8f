package playground

import (
	"errors"
	"fmt"

	"github.com/utkarsh5026/pollme/mpsc"
	"github.com/utkarsh5026/pollme/thread"
)

// RoundTripReport is the outcome of RoundTrip.
type RoundTripReport struct {
	Reply        string
	Disconnected bool // a further Recv reported the worker's sender gone
}

// RoundTrip spawns a worker, sends it msg over one channel and receives the
// worker's reply over another.
func (p *Playground) RoundTrip(msg string) (RoundTripReport, error) {
	p.section("message passing")

	tx, rx := mpsc.New[string]()
	replyTx, replyRx := mpsc.New[string]()

	h := thread.Spawn(func() error {
		defer replyTx.Close()
		data, err := rx.Recv()
		if err != nil {
			return fmt.Errorf("worker recv: %w", err)
		}
		p.printf("%s\n", data)
		return replyTx.Send(data)
	})

	if err := tx.Send(msg); err != nil {
		return RoundTripReport{}, fmt.Errorf("send request: %w", err)
	}
	tx.Close()

	var report RoundTripReport
	reply, err := replyRx.Recv()
	if err != nil {
		return report, fmt.Errorf("receive reply: %w", err)
	}
	report.Reply = reply

	workerErr, panicErr := h.Join()
	if err := errors.Join(workerErr, panicErr); err != nil {
		return report, fmt.Errorf("join worker: %w", err)
	}

	if _, err := replyRx.Recv(); errors.Is(err, mpsc.ErrDisconnected) {
		p.logger.Debug("reply channel disconnected", "error", err)
		report.Disconnected = true
	}
	return report, nil
}

// RequestResponse gives every input its own worker and its own pair of
// channels. Each worker receives one value, adds 1 and sends it back. The
// result is index-aligned with inputs.
//
// A pair that disconnects is logged and its slot left at zero; the failures
// are returned together after every worker is joined.
func (p *Playground) RequestResponse(inputs []int) ([]int, error) {
	p.section("worker channels")

	requests := make([]*mpsc.Sender[int], len(inputs))
	replies := make([]*mpsc.Receiver[int], len(inputs))

	pool := newPool[error](p)
	for i := range inputs {
		reqTx, reqRx := mpsc.New[int]()
		respTx, respRx := mpsc.New[int]()
		requests[i] = reqTx
		replies[i] = respRx

		pool.Spawn(func() error {
			defer respTx.Close()
			v, err := reqRx.Recv()
			if err != nil {
				return fmt.Errorf("worker %d recv: %w", i, err)
			}
			return respTx.Send(v + 1)
		})
	}

	for i, v := range inputs {
		if err := requests[i].Send(v); err != nil {
			p.logger.Warn("request not delivered", "worker", i, "error", err)
		}
		requests[i].Close()
	}

	results := make([]int, len(inputs))
	var errs []error
	for i, rx := range replies {
		v, err := rx.Recv()
		if err != nil {
			p.logger.Warn("no reply", "worker", i, "error", err)
			errs = append(errs, fmt.Errorf("worker %d reply: %w", i, err))
			continue
		}
		results[i] = v
	}

	workerErrs, panicErr := pool.JoinAll()
	errs = append(errs, panicErr)
	errs = append(errs, workerErrs...)

	p.printf("data = %v\n", results)
	return results, errors.Join(errs...)
}
