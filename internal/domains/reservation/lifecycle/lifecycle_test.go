package lifecycle_test

import (
	"net/http"
	"queueup/internal/domains/reservation/lifecycle"
	"queueup/shared/constant"
	"queueup/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := map[string][]string{
		lifecycle.StatusPending:    {lifecycle.StatusConfirmed, lifecycle.StatusCancelled},
		lifecycle.StatusConfirmed:  {lifecycle.StatusInProgress, lifecycle.StatusCancelled},
		lifecycle.StatusInProgress: {lifecycle.StatusCompleted, lifecycle.StatusCancelled},
		lifecycle.StatusCompleted:  {},
		lifecycle.StatusCancelled:  {},
	}

	for _, current := range lifecycle.Statuses() {
		for _, requested := range lifecycle.Statuses() {
			want := false
			for _, s := range allowed[current] {
				if s == requested {
					want = true
				}
			}

			got := lifecycle.CanTransition(current, requested)
			assert.Equal(t, want, got, "transition %s -> %s", current, requested)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, lifecycle.IsTerminal(lifecycle.StatusCompleted))
	assert.True(t, lifecycle.IsTerminal(lifecycle.StatusCancelled))
	assert.False(t, lifecycle.IsTerminal(lifecycle.StatusPending))
	assert.False(t, lifecycle.IsTerminal(lifecycle.StatusConfirmed))
	assert.False(t, lifecycle.IsTerminal(lifecycle.StatusInProgress))
	assert.False(t, lifecycle.IsTerminal("unknown"))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		owned     bool
		current   string
		requested string
		wantKind  failure.Kind
		wantCode  int
	}{
		{
			name:      "queuer confirms own pending reservation",
			role:      constant.RoleQueuer,
			owned:     true,
			current:   lifecycle.StatusPending,
			requested: lifecycle.StatusConfirmed,
		},
		{
			name:      "queuer starts own confirmed reservation",
			role:      constant.RoleQueuer,
			owned:     true,
			current:   lifecycle.StatusConfirmed,
			requested: lifecycle.StatusInProgress,
		},
		{
			name:      "queuer completes own in_progress reservation",
			role:      constant.RoleQueuer,
			owned:     true,
			current:   lifecycle.StatusInProgress,
			requested: lifecycle.StatusCompleted,
		},
		{
			name:      "queuer cancels own confirmed reservation",
			role:      constant.RoleQueuer,
			owned:     true,
			current:   lifecycle.StatusConfirmed,
			requested: lifecycle.StatusCancelled,
		},
		{
			name:      "queuer cannot skip confirmed",
			role:      constant.RoleQueuer,
			owned:     true,
			current:   lifecycle.StatusPending,
			requested: lifecycle.StatusInProgress,
			wantKind:  failure.KindInvalidTransition,
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name:      "queuer cannot transition a foreign reservation",
			role:      constant.RoleQueuer,
			owned:     false,
			current:   lifecycle.StatusPending,
			requested: lifecycle.StatusConfirmed,
			wantKind:  failure.KindForbidden,
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "client cancels own pending reservation",
			role:      constant.RoleClient,
			owned:     true,
			current:   lifecycle.StatusPending,
			requested: lifecycle.StatusCancelled,
		},
		{
			name:      "client cancels own confirmed reservation",
			role:      constant.RoleClient,
			owned:     true,
			current:   lifecycle.StatusConfirmed,
			requested: lifecycle.StatusCancelled,
		},
		{
			name:      "client cannot start a reservation",
			role:      constant.RoleClient,
			owned:     true,
			current:   lifecycle.StatusPending,
			requested: lifecycle.StatusInProgress,
			wantKind:  failure.KindForbidden,
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "client cannot complete a reservation",
			role:      constant.RoleClient,
			owned:     true,
			current:   lifecycle.StatusInProgress,
			requested: lifecycle.StatusCompleted,
			wantKind:  failure.KindForbidden,
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "client cannot cancel once in progress",
			role:      constant.RoleClient,
			owned:     true,
			current:   lifecycle.StatusInProgress,
			requested: lifecycle.StatusCancelled,
			wantKind:  failure.KindForbidden,
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "admin forces any table transition without ownership",
			role:      constant.RoleAdmin,
			owned:     false,
			current:   lifecycle.StatusConfirmed,
			requested: lifecycle.StatusInProgress,
		},
		{
			name:      "admin still bound by the table",
			role:      constant.RoleAdmin,
			owned:     false,
			current:   lifecycle.StatusPending,
			requested: lifecycle.StatusCompleted,
			wantKind:  failure.KindInvalidTransition,
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name:      "completed is terminal",
			role:      constant.RoleAdmin,
			owned:     true,
			current:   lifecycle.StatusCompleted,
			requested: lifecycle.StatusCancelled,
			wantKind:  failure.KindInvalidTransition,
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name:      "cancelled is terminal",
			role:      constant.RoleQueuer,
			owned:     true,
			current:   lifecycle.StatusCancelled,
			requested: lifecycle.StatusConfirmed,
			wantKind:  failure.KindInvalidTransition,
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name:      "unknown role is rejected",
			role:      "superuser",
			owned:     true,
			current:   lifecycle.StatusPending,
			requested: lifecycle.StatusConfirmed,
			wantKind:  failure.KindForbidden,
			wantCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := lifecycle.Check(tt.role, tt.owned, tt.current, tt.requested)

			if tt.wantKind == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.KindOf(err))
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
