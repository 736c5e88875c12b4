package sync_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	. "github.com/commons-pulse/commons-pulse/internal/application/sync"
	syncMocks "github.com/commons-pulse/commons-pulse/internal/application/sync/mocks"
	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
	syncstateMocks "github.com/commons-pulse/commons-pulse/internal/domain/syncstate/mocks"
	"github.com/commons-pulse/commons-pulse/internal/domain/vote"
	voteMocks "github.com/commons-pulse/commons-pulse/internal/domain/vote/mocks"
)

type castFixture struct {
	source      *syncMocks.MockRemoteSource
	votes       *voteMocks.MockRepository
	casts       *voteMocks.MockCastRepository
	cursors     *syncstateMocks.MockCursorRepository
	deadLetters *syncstateMocks.MockDeadLetterRepository
}

func newCastFixture(t *testing.T) *castFixture {
	ctrl := gomock.NewController(t)
	return &castFixture{
		source:      syncMocks.NewMockRemoteSource(ctrl),
		votes:       voteMocks.NewMockRepository(ctrl),
		casts:       voteMocks.NewMockCastRepository(ctrl),
		cursors:     syncstateMocks.NewMockCursorRepository(ctrl),
		deadLetters: syncstateMocks.NewMockDeadLetterRepository(ctrl),
	}
}

func (f *castFixture) synchronizer() *CastSynchronizer {
	return NewCastSynchronizer(f.source, f.votes, f.casts, f.cursors, f.deadLetters, "45", "1", false, zerolog.Nop())
}

func pendingVote(division int) *vote.Vote {
	return &vote.Vote{Parliament: "45", Session: "1", DivisionNumber: division}
}

func TestCastSynchronizer_FetchesAndMarksComplete(t *testing.T) {
	f := newCastFixture(t)
	ctx := context.Background()

	casts := []*vote.Cast{
		{Parliament: "45", Session: "1", DivisionNumber: 3, PersonID: "A", Decision: vote.DecisionYea},
		{Parliament: "45", Session: "1", DivisionNumber: 3, PersonID: "B", Decision: vote.DecisionNay},
	}

	f.cursors.EXPECT().Get(ctx, syncstate.EntityVoteCasts).Return(nil, nil)
	f.votes.EXPECT().ListCastPending(ctx, "45", "1", gomock.Nil()).Return([]*vote.Vote{pendingVote(3)}, nil)
	f.casts.EXPECT().HasCastsForDivision(ctx, "45", "1", 3).Return(false, nil)
	f.source.EXPECT().ListVoteCasts(ctx, "45", "1", 3).Return(casts, nil)
	f.casts.EXPECT().BulkUpsert(ctx, casts).Return(nil)
	f.votes.EXPECT().MarkCastsComplete(ctx, "45", "1", 3).Return(nil)
	f.source.EXPECT().Throttle(ctx).Return(nil)
	f.cursors.EXPECT().Set(ctx, syncstate.EntityVoteCasts, gomock.Any()).Return(nil)

	res, err := f.synchronizer().Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Fetched: 1, Upserted: 2}, res)
}

func TestCastSynchronizer_ExistingCastsSkipFetch(t *testing.T) {
	f := newCastFixture(t)
	ctx := context.Background()

	f.cursors.EXPECT().Get(ctx, syncstate.EntityVoteCasts).Return(nil, nil)
	f.votes.EXPECT().ListCastPending(ctx, "45", "1", gomock.Nil()).Return([]*vote.Vote{pendingVote(3)}, nil)
	f.casts.EXPECT().HasCastsForDivision(ctx, "45", "1", 3).Return(true, nil)
	f.votes.EXPECT().MarkCastsComplete(ctx, "45", "1", 3).Return(nil)
	f.cursors.EXPECT().Set(ctx, syncstate.EntityVoteCasts, gomock.Any()).Return(nil)

	res, err := f.synchronizer().Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Fetched: 1, Skipped: 1}, res)
}

func TestCastSynchronizer_FetchFailureKeepsDivisionPending(t *testing.T) {
	f := newCastFixture(t)
	ctx := context.Background()

	f.cursors.EXPECT().Get(ctx, syncstate.EntityVoteCasts).Return(nil, nil)
	f.votes.EXPECT().ListCastPending(ctx, "45", "1", gomock.Nil()).Return([]*vote.Vote{pendingVote(3), pendingVote(4)}, nil)

	f.casts.EXPECT().HasCastsForDivision(ctx, "45", "1", 3).Return(false, nil)
	f.source.EXPECT().ListVoteCasts(ctx, "45", "1", 3).Return(nil, errors.New("upstream 502"))
	// Division 3 is not marked complete; the walk moves on to division 4.
	f.casts.EXPECT().HasCastsForDivision(ctx, "45", "1", 4).Return(false, nil)
	f.source.EXPECT().ListVoteCasts(ctx, "45", "1", 4).Return([]*vote.Cast{{DivisionNumber: 4, PersonID: "A"}}, nil)
	f.casts.EXPECT().BulkUpsert(ctx, gomock.Any()).Return(nil)
	f.votes.EXPECT().MarkCastsComplete(ctx, "45", "1", 4).Return(nil)
	f.source.EXPECT().Throttle(ctx).Return(nil)
	f.cursors.EXPECT().Set(ctx, syncstate.EntityVoteCasts, gomock.Any()).Return(nil)

	res, err := f.synchronizer().Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Fetched: 2, Upserted: 1}, res)
}

func TestCastSynchronizer_BatchFailureDeadLetters(t *testing.T) {
	f := newCastFixture(t)
	ctx := context.Background()

	casts := []*vote.Cast{{DivisionNumber: 3, PersonID: "A"}}

	f.cursors.EXPECT().Get(ctx, syncstate.EntityVoteCasts).Return(nil, nil)
	f.votes.EXPECT().ListCastPending(ctx, "45", "1", gomock.Nil()).Return([]*vote.Vote{pendingVote(3)}, nil)
	f.casts.EXPECT().HasCastsForDivision(ctx, "45", "1", 3).Return(false, nil)
	f.source.EXPECT().ListVoteCasts(ctx, "45", "1", 3).Return(casts, nil)
	f.casts.EXPECT().BulkUpsert(ctx, casts).Return(errors.New("write failed"))
	f.deadLetters.EXPECT().
		Record(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, dl *syncstate.DeadLetter) error {
			assert.Equal(t, syncstate.EntityVoteCasts, dl.Entity)
			assert.Equal(t, "3", dl.NaturalKey["division_number"])
			return nil
		})
	// The division is not marked complete after a failed batch.
	f.cursors.EXPECT().Set(ctx, syncstate.EntityVoteCasts, gomock.Any()).Return(nil)

	res, err := f.synchronizer().Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Fetched: 1}, res)
}

func TestCastSynchronizer_EmptyCastListStillCompletes(t *testing.T) {
	f := newCastFixture(t)
	ctx := context.Background()

	f.cursors.EXPECT().Get(ctx, syncstate.EntityVoteCasts).Return(nil, nil)
	f.votes.EXPECT().ListCastPending(ctx, "45", "1", gomock.Nil()).Return([]*vote.Vote{pendingVote(3)}, nil)
	f.casts.EXPECT().HasCastsForDivision(ctx, "45", "1", 3).Return(false, nil)
	f.source.EXPECT().ListVoteCasts(ctx, "45", "1", 3).Return(nil, nil)
	f.votes.EXPECT().MarkCastsComplete(ctx, "45", "1", 3).Return(nil)
	f.source.EXPECT().Throttle(ctx).Return(nil)
	f.cursors.EXPECT().Set(ctx, syncstate.EntityVoteCasts, gomock.Any()).Return(nil)

	res, err := f.synchronizer().Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Fetched: 1}, res)
}
