package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/smarttask/internal/model"
	"github.com/nhle/smarttask/internal/store"
	"github.com/nhle/smarttask/internal/testutil"
)

func TestCreateHabitRoundTripsFrequency(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, s, "a@example.com")

	habit, err := s.CreateHabit(ctx, model.Habit{
		Name:      "Run",
		Frequency: []string{"Mon", "Wed", "Fri"},
		UserID:    user.ID,
	})
	require.NoError(t, err)

	got, err := s.GetHabit(ctx, user.ID, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mon", "Wed", "Fri"}, got.Frequency)
	assert.Equal(t, 0, got.Streak)
}

func TestCreateHabitDefaults(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, s, "a@example.com")

	habit, err := s.CreateHabit(ctx, model.Habit{Name: "Read", Streak: -4, UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, habit.Streak)
	assert.Equal(t, []string{}, habit.Frequency)

	_, err = s.CreateHabit(ctx, model.Habit{Name: "", UserID: user.ID})
	assert.ErrorIs(t, err, store.ErrInvalid)
}

func TestUpdateHabitClampsStreak(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, s, "a@example.com")

	habit, err := s.CreateHabit(ctx, model.Habit{Name: "Meditate", UserID: user.ID})
	require.NoError(t, err)

	updated, err := s.UpdateHabit(ctx, user.ID, habit.ID, model.HabitPatch{Streak: ptr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Streak)
	assert.Equal(t, "Meditate", updated.Name)

	updated, err = s.UpdateHabit(ctx, user.ID, habit.ID, model.HabitPatch{
		Streak:    ptr(-1),
		Frequency: ptr([]string{"daily"}),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Streak)

	got, err := s.GetHabit(ctx, user.ID, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Streak)
	assert.Equal(t, []string{"daily"}, got.Frequency)
}

func TestHabitOwnerScoping(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, s, "alice@example.com")
	bob := testutil.CreateUser(t, s, "bob@example.com")

	habit, err := s.CreateHabit(ctx, model.Habit{Name: "Stretch", UserID: alice.ID})
	require.NoError(t, err)

	_, err = s.UpdateHabit(ctx, bob.ID, habit.ID, model.HabitPatch{Streak: ptr(10)})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteHabit(ctx, bob.ID, habit.ID), store.ErrNotFound)

	habits, err := s.ListHabits(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, 0, habits[0].Streak)

	require.NoError(t, s.DeleteHabit(ctx, alice.ID, habit.ID))
	habits, err = s.ListHabits(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, habits)
}
