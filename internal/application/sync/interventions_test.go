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
	"github.com/commons-pulse/commons-pulse/internal/domain/intervention"
	interventionMocks "github.com/commons-pulse/commons-pulse/internal/domain/intervention/mocks"
	"github.com/commons-pulse/commons-pulse/internal/domain/member"
	memberMocks "github.com/commons-pulse/commons-pulse/internal/domain/member/mocks"
	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
	syncstateMocks "github.com/commons-pulse/commons-pulse/internal/domain/syncstate/mocks"
)

type interventionFixture struct {
	source      *syncMocks.MockRemoteSource
	members     *memberMocks.MockRepository
	repo        *interventionMocks.MockRepository
	cursors     *syncstateMocks.MockCursorRepository
	deadLetters *syncstateMocks.MockDeadLetterRepository
}

func newInterventionFixture(t *testing.T) *interventionFixture {
	ctrl := gomock.NewController(t)
	return &interventionFixture{
		source:      syncMocks.NewMockRemoteSource(ctrl),
		members:     memberMocks.NewMockRepository(ctrl),
		repo:        interventionMocks.NewMockRepository(ctrl),
		cursors:     syncstateMocks.NewMockCursorRepository(ctrl),
		deadLetters: syncstateMocks.NewMockDeadLetterRepository(ctrl),
	}
}

func (f *interventionFixture) synchronizer() *InterventionSynchronizer {
	return NewInterventionSynchronizer(f.source, f.members, f.repo, f.cursors, f.deadLetters, "45", "1", 2, false, zerolog.Nop())
}

func sessionIntervention(personID, id, parliament, session string) *intervention.Intervention {
	return &intervention.Intervention{
		Parliament:     parliament,
		Session:        session,
		PersonID:       personID,
		InterventionID: id,
	}
}

func TestInterventionSynchronizer_WalksHouseRoster(t *testing.T) {
	f := newInterventionFixture(t)
	ctx := context.Background()

	roster := []*member.Member{
		{PersonID: "A", Chamber: "house"},
		{PersonID: "S", Chamber: "Senate"},
	}

	f.cursors.EXPECT().Get(gomock.Any(), syncstate.EntityInterventions).Return(nil, nil)
	f.members.EXPECT().List(gomock.Any()).Return(roster, nil)
	// Only the House member is fetched.
	f.source.EXPECT().
		ListMemberInterventions(gomock.Any(), "45", "1", "A", 0).
		Return([]*intervention.Intervention{sessionIntervention("A", "1", "45", "1")}, false, nil)
	f.repo.EXPECT().BulkUpsert(gomock.Any(), gomock.Len(1)).Return(nil)
	f.cursors.EXPECT().Set(gomock.Any(), syncstate.EntityInterventions, gomock.Any()).Return(nil)

	res, err := f.synchronizer().Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Fetched: 1, Upserted: 1}, res)
}

func TestInterventionSynchronizer_DiscardsOtherSessions(t *testing.T) {
	f := newInterventionFixture(t)
	ctx := context.Background()

	roster := []*member.Member{{PersonID: "A", Chamber: "house"}}
	items := []*intervention.Intervention{
		sessionIntervention("A", "1", "45", "1"),
		sessionIntervention("A", "2", "44", "1"),
		sessionIntervention("A", "3", "45", "2"),
	}

	f.cursors.EXPECT().Get(gomock.Any(), syncstate.EntityInterventions).Return(nil, nil)
	f.members.EXPECT().List(gomock.Any()).Return(roster, nil)
	f.source.EXPECT().
		ListMemberInterventions(gomock.Any(), "45", "1", "A", 0).
		Return(items, false, nil)
	f.repo.EXPECT().
		BulkUpsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []*intervention.Intervention) error {
			require.Len(t, batch, 1)
			assert.Equal(t, "1", batch[0].InterventionID)
			return nil
		})
	f.cursors.EXPECT().Set(gomock.Any(), syncstate.EntityInterventions, gomock.Any()).Return(nil)

	res, err := f.synchronizer().Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Fetched: 3, Upserted: 1, Skipped: 2}, res)
}

func TestInterventionSynchronizer_FetchFailureAbandonsMemberOnly(t *testing.T) {
	f := newInterventionFixture(t)
	ctx := context.Background()

	roster := []*member.Member{
		{PersonID: "A", Chamber: "house"},
		{PersonID: "B", Chamber: "house"},
	}

	f.cursors.EXPECT().Get(gomock.Any(), syncstate.EntityInterventions).Return(nil, nil)
	f.members.EXPECT().List(gomock.Any()).Return(roster, nil)
	f.source.EXPECT().
		ListMemberInterventions(gomock.Any(), "45", "1", "A", 0).
		Return(nil, false, errors.New("upstream 503"))
	f.source.EXPECT().
		ListMemberInterventions(gomock.Any(), "45", "1", "B", 0).
		Return([]*intervention.Intervention{sessionIntervention("B", "9", "45", "1")}, false, nil)
	f.repo.EXPECT().BulkUpsert(gomock.Any(), gomock.Len(1)).Return(nil)
	f.cursors.EXPECT().Set(gomock.Any(), syncstate.EntityInterventions, gomock.Any()).Return(nil)

	res, err := f.synchronizer().Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Fetched: 1, Upserted: 1}, res)
}

func TestInterventionSynchronizer_BatchFailureDeadLetters(t *testing.T) {
	f := newInterventionFixture(t)
	ctx := context.Background()

	roster := []*member.Member{{PersonID: "A", Chamber: "house"}}

	f.cursors.EXPECT().Get(gomock.Any(), syncstate.EntityInterventions).Return(nil, nil)
	f.members.EXPECT().List(gomock.Any()).Return(roster, nil)
	f.source.EXPECT().
		ListMemberInterventions(gomock.Any(), "45", "1", "A", 0).
		Return([]*intervention.Intervention{sessionIntervention("A", "1", "45", "1")}, false, nil)
	f.repo.EXPECT().BulkUpsert(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
	f.deadLetters.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dl *syncstate.DeadLetter) error {
			assert.Equal(t, syncstate.EntityInterventions, dl.Entity)
			assert.Equal(t, "A", dl.NaturalKey["person_id"])
			return nil
		})
	f.cursors.EXPECT().Set(gomock.Any(), syncstate.EntityInterventions, gomock.Any()).Return(nil)

	res, err := f.synchronizer().Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Fetched: 1}, res)
}
