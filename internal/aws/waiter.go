/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"time"

	"github.com/apex/log"
)

// ErrWaitTimeout indicates the waiter gave up before the stack reached a
// terminal state. The stack operation itself keeps running; only the
// waiting stopped.
var ErrWaitTimeout = errors.New("timed out waiting for stack operation to complete")

// WaiterConfig controls the polling loop used to wait for stack
// operations. An explicit interval and attempt budget keeps timeout and
// cancellation behaviour visible and testable, unlike the SDK's opaque
// waiters.
type WaiterConfig struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultWaiterConfig matches the provider's usual stack waiter cadence.
func DefaultWaiterConfig() WaiterConfig {
	return WaiterConfig{
		Interval:    10 * time.Second,
		MaxAttempts: 60,
	}
}

// WaitForStackOperation polls the stack until it reaches a terminal state,
// the attempt budget is exhausted (ErrWaitTimeout), or ctx is cancelled.
// On cancellation the in-flight stack operation is left running; the call
// just stops observing it. A stack that disappears while waiting counts as
// a completed deletion.
func (cf *DefaultCloudFormationOperations) WaitForStackOperation(ctx context.Context, stackName string, cfg WaiterConfig) (StackStatus, error) {
	var lastStatus StackStatus

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return lastStatus, ctx.Err()
			case <-time.After(cfg.Interval):
			}
		}

		stack, err := cf.DescribeStack(ctx, stackName)
		if err != nil {
			if IsStackNotFound(err) {
				return StackStatusDeleteComplete, nil
			}
			return lastStatus, err
		}

		lastStatus = stack.Status
		if lastStatus.Terminal() {
			return lastStatus, nil
		}

		log.WithField("stack", stackName).WithField("status", string(lastStatus)).
			Debug("stack operation in progress")
	}

	return lastStatus, ErrWaitTimeout
}
