//go:build unit

package contract_test

import (
	"testing"

	"rental-contracts/internal/domain/contract"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[contract.Status][]contract.Status{
		contract.StatusDraft:           {contract.StatusPendingApproval, contract.StatusCancelled},
		contract.StatusPendingApproval: {contract.StatusApproved, contract.StatusDraft, contract.StatusCancelled},
		contract.StatusApproved:        {contract.StatusActive, contract.StatusCancelled},
		contract.StatusActive:          {contract.StatusFinished, contract.StatusCancelled},
		contract.StatusFinished:        {},
		contract.StatusCancelled:       {},
	}

	for _, from := range contract.AllStatuses() {
		for _, to := range contract.AllStatuses() {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
		if diff := cmp.Diff(allowed[from], from.AllowedTargets()); diff != "" {
			t.Errorf("AllowedTargets(%s) mismatch (-want +got):\n%s", from, diff)
		}
	}
}

func TestStatus_Classification(t *testing.T) {
	assert.True(t, contract.StatusFinished.IsTerminal())
	assert.True(t, contract.StatusCancelled.IsTerminal())
	assert.False(t, contract.StatusActive.IsTerminal())

	for _, s := range contract.AllStatuses() {
		want := s == contract.StatusApproved || s == contract.StatusActive
		assert.Equal(t, want, s.IsReserving(), "IsReserving(%s)", s)
	}
	assert.ElementsMatch(t, []contract.Status{contract.StatusApproved, contract.StatusActive}, contract.ReservingStatuses())
}

func TestParseStatus(t *testing.T) {
	for _, s := range contract.AllStatuses() {
		got, err := contract.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := contract.ParseStatus("archived")
	assert.ErrorIs(t, err, contract.ErrInvalidStatus)
	_, err = contract.ParseStatus("")
	assert.ErrorIs(t, err, contract.ErrInvalidStatus)
}

func TestNewTransition(t *testing.T) {
	actor := uuid.New()

	tests := []struct {
		name    string
		target  contract.Status
		actor   uuid.UUID
		reason  string
		want    contract.Transition
		wantErr error
	}{
		{name: "submit", target: contract.StatusPendingApproval, actor: actor, want: contract.SubmitForApproval{}},
		{name: "return to draft", target: contract.StatusDraft, actor: actor, want: contract.ReturnToDraft{}},
		{name: "approve records the actor", target: contract.StatusApproved, actor: actor, want: contract.Approve{ApproverID: actor}},
		{name: "activate", target: contract.StatusActive, actor: actor, want: contract.Activate{}},
		{name: "finish", target: contract.StatusFinished, actor: actor, want: contract.Finish{}},
		{name: "cancel keeps the reason", target: contract.StatusCancelled, actor: actor, reason: "customer request", want: contract.Cancel{Reason: "customer request"}},
		{name: "cancel without reason is left to Apply", target: contract.StatusCancelled, actor: actor, reason: "   ", want: contract.Cancel{Reason: "   "}},
		{name: "error: unknown target", target: contract.Status("archived"), actor: actor, wantErr: contract.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := contract.NewTransition(tt.target, tt.actor, tt.reason)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.target, got.Target())
		})
	}
}
