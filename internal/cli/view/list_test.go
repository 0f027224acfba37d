package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"LostAndFound/internal/cli/api"
)

type mockItemWriter struct {
	mock.Mock
}

func (m *mockItemWriter) UpdateItemStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockItemWriter) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func sampleItems() []api.Item {
	found := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	return []api.Item{
		{ID: "a1", Name: "Water Bottle", FoundLocation: "Gym", Status: "unclaimed", FoundDate: found},
		{ID: "b2", Name: "Umbrella", FoundLocation: "Entrance Hall", Status: "claimed", FoundDate: found},
		{ID: "c3", Name: "Notebook", FoundLocation: "Library bottle rack", Status: "claimed", FoundDate: found},
	}
}

func TestListState_FilterByText(t *testing.T) {
	s := NewListState(nil, false)
	s.SetItems(sampleItems())

	s.TextFilter = "bottle"
	got := s.Filtered()
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID) // name match
	assert.Equal(t, "c3", got[1].ID) // found-location match
}

func TestListState_FilterByStatus(t *testing.T) {
	s := NewListState(nil, false)
	s.SetItems(sampleItems())

	s.StatusFilter = "claimed"
	got := s.Filtered()
	require.Len(t, got, 2)
	assert.Equal(t, "b2", got[0].ID)
	assert.Equal(t, "c3", got[1].ID)
}

func TestListState_FiltersAreConjunctive(t *testing.T) {
	s := NewListState(nil, false)
	s.SetItems(sampleItems())

	s.TextFilter = "bottle"
	s.StatusFilter = "claimed"
	got := s.Filtered()
	require.Len(t, got, 1)
	assert.Equal(t, "c3", got[0].ID)
}

func TestListState_AllStatusPassesEverything(t *testing.T) {
	s := NewListState(nil, false)
	s.SetItems(sampleItems())

	s.StatusFilter = "all"
	assert.Len(t, s.Filtered(), 3)
}

func TestListState_ToggleStatusRequiresAdmin(t *testing.T) {
	writer := &mockItemWriter{}
	s := NewListState(writer, false)
	s.SetItems(sampleItems())

	err := s.ToggleStatus(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrAdminRequired)
	writer.AssertNotCalled(t, "UpdateItemStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestListState_ToggleStatusPatchesLocally(t *testing.T) {
	writer := &mockItemWriter{}
	writer.On("UpdateItemStatus", mock.Anything, "a1", "claimed").Return(nil).Once()

	s := NewListState(writer, true)
	s.SetItems(sampleItems())

	require.NoError(t, s.ToggleStatus(context.Background(), "a1"))
	assert.Equal(t, "claimed", s.Items()[0].Status)

	// and back
	writer.On("UpdateItemStatus", mock.Anything, "a1", "unclaimed").Return(nil).Once()
	require.NoError(t, s.ToggleStatus(context.Background(), "a1"))
	assert.Equal(t, "unclaimed", s.Items()[0].Status)

	writer.AssertExpectations(t)
}

func TestListState_ToggleStatusServerFailureLeavesLocalCopy(t *testing.T) {
	writer := &mockItemWriter{}
	writer.On("UpdateItemStatus", mock.Anything, "a1", "claimed").
		Return(errors.New("server error 500")).Once()

	s := NewListState(writer, true)
	s.SetItems(sampleItems())

	err := s.ToggleStatus(context.Background(), "a1")
	require.Error(t, err)
	assert.Equal(t, "unclaimed", s.Items()[0].Status)
}

func TestListState_RemoveRequiresAdmin(t *testing.T) {
	writer := &mockItemWriter{}
	s := NewListState(writer, false)
	s.SetItems(sampleItems())

	err := s.Remove(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrAdminRequired)
	writer.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
}

func TestListState_RemoveDropsItemWithoutRefetch(t *testing.T) {
	writer := &mockItemWriter{}
	writer.On("DeleteItem", mock.Anything, "b2").Return(nil).Once()

	s := NewListState(writer, true)
	s.SetItems(sampleItems())

	require.NoError(t, s.Remove(context.Background(), "b2"))
	require.Len(t, s.Items(), 2)
	assert.Equal(t, "a1", s.Items()[0].ID)
	assert.Equal(t, "c3", s.Items()[1].ID)
	writer.AssertExpectations(t)
}

func TestListState_UnknownItem(t *testing.T) {
	s := NewListState(&mockItemWriter{}, true)
	s.SetItems(sampleItems())

	assert.Error(t, s.ToggleStatus(context.Background(), "nope"))
	assert.Error(t, s.Remove(context.Background(), "nope"))
}
