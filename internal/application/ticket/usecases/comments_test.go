package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestAddCommentUseCase_Execute(t *testing.T) {
	tests := []struct {
		name              string
		actor             authorization.Actor
		internal          bool
		content           string
		wantErr           func(error) bool
		wantFirstResponse bool
	}{
		{name: "requester comments on own ticket", actor: userActor, content: "Still broken"},
		{name: "staff public comment is the first response", actor: staffActor, content: "Looking into it", wantFirstResponse: true},
		{name: "staff internal comment is not a response", actor: staffActor, internal: true, content: "Check router logs"},
		{name: "requester cannot post internal", actor: userActor, internal: true, content: "x", wantErr: errors.IsForbiddenError},
		{name: "other user refused", actor: otherUser, content: "x", wantErr: errors.IsForbiddenError},
		{name: "empty content", actor: staffActor, content: "   ", wantErr: errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &ticketStore{ticket: existingTicket(10, userActor.UserID)}
			var saved *ticket.Comment
			comments := &mockCommentRepository{
				CreateFunc: func(ctx context.Context, c *ticket.Comment) error {
					c.SetID(5)
					saved = c
					return nil
				},
			}
			uc := NewAddCommentUseCase(store.repo(), comments, newTestChecker(t), &fakeTransactor{}, logger.NewNopLogger())
			uc.now = fixedNow

			result, err := uc.Execute(context.Background(), AddCommentCommand{
				Actor: tt.actor, TicketID: 10, Content: tt.content, IsInternal: tt.internal,
			})
			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Nil(t, saved)
				assert.Zero(t, store.updates)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(5), result.ID)
			assert.Equal(t, tt.internal, result.IsInternal)
			assert.Equal(t, testNow, store.ticket.UpdatedAt())
			assert.Equal(t, 1, store.updates)
			if tt.wantFirstResponse {
				require.NotNil(t, store.ticket.FirstResponseAt())
				assert.Equal(t, testNow, *store.ticket.FirstResponseAt())
			} else {
				assert.Nil(t, store.ticket.FirstResponseAt())
			}
		})
	}
}

func TestAddCommentUseCase_Execute_FirstResponseIsRecordedOnce(t *testing.T) {
	store := &ticketStore{ticket: existingTicket(10, userActor.UserID)}
	clock := testNow
	uc := NewAddCommentUseCase(store.repo(), &mockCommentRepository{}, newTestChecker(t), &fakeTransactor{}, logger.NewNopLogger())
	uc.now = func() time.Time { return clock }

	_, err := uc.Execute(context.Background(), AddCommentCommand{Actor: staffActor, TicketID: 10, Content: "first"})
	require.NoError(t, err)

	clock = testNow.Add(3 * time.Hour)
	_, err = uc.Execute(context.Background(), AddCommentCommand{Actor: adminActor, TicketID: 10, Content: "second"})
	require.NoError(t, err)

	require.NotNil(t, store.ticket.FirstResponseAt())
	assert.Equal(t, testNow, *store.ticket.FirstResponseAt())
	assert.Equal(t, clock, store.ticket.UpdatedAt())
}

func TestListCommentsUseCase_Execute_HidesInternalFromRequester(t *testing.T) {
	tests := []struct {
		name            string
		actor           authorization.Actor
		includeInternal bool
	}{
		{name: "requester", actor: userActor, includeInternal: false},
		{name: "staff", actor: staffActor, includeInternal: true},
		{name: "admin", actor: adminActor, includeInternal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &ticketStore{ticket: existingTicket(10, userActor.UserID)}
			var gotInclude bool
			comments := &mockCommentRepository{
				ListByTicketFunc: func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.CommentView, error) {
					gotInclude = includeInternal
					return []*ticket.CommentView{{ID: 1, TicketID: ticketID, Content: "hello", AuthorName: "Regular User"}}, nil
				},
			}
			uc := NewListCommentsUseCase(store.repo(), comments, newTestChecker(t), logger.NewNopLogger())

			result, err := uc.Execute(context.Background(), ListCommentsQuery{Actor: tt.actor, TicketID: 10})
			require.NoError(t, err)
			require.Len(t, result, 1)
			assert.Equal(t, "Regular User", result[0].AuthorName)
			assert.Equal(t, tt.includeInternal, gotInclude)
		})
	}
}

func TestListCommentsUseCase_Execute_OtherUserRefused(t *testing.T) {
	store := &ticketStore{ticket: existingTicket(10, userActor.UserID)}
	uc := NewListCommentsUseCase(store.repo(), &mockCommentRepository{}, newTestChecker(t), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ListCommentsQuery{Actor: otherUser, TicketID: 10})
	assert.True(t, errors.IsForbiddenError(err))
}
