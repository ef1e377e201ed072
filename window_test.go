package pricedb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/etnz/pricedb/date"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFormat_LastDate(t *testing.T) {
	f := DefaultFormat()
	last, ok, err := f.LastDate([]string{
		"P 2024/01/03 23:59:59 EUR USD1.09",
		"P 2024/01/05 23:59:59 GBP USD1.27",
		"P garbage",
		"P 2023/12/31 23:59:59 EUR USD1.10",
	})
	if !ok {
		t.Fatal("LastDate() ok = false")
	}
	if err == nil {
		t.Error("LastDate() expected the unreadable line to be reported")
	}
	if want := D(2024, time.January, 5); last != want {
		t.Errorf("LastDate() = %v, want %v", last, want)
	}

	if _, ok, _ := f.LastDate(nil); ok {
		t.Error("LastDate(nil) ok = true")
	}
}

func TestWindow_fromDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := NewMockJournal(ctrl) // must not be queried

	today := D(2024, time.January, 10)
	w, fromJournal, err := Window(context.Background(), DefaultFormat(), []string{
		"P 2024/01/01 23:59:59 EUR USD1.08",
		"P 2024/01/04 23:59:59 EUR USD1.09",
	}, journal, today)
	require.NoError(t, err)
	require.False(t, fromJournal)
	require.Equal(t, date.NewRange(D(2024, time.January, 4), today), w)
}

func TestWindow_fromJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := NewMockJournal(ctrl)
	journal.EXPECT().FirstDate(gomock.Any()).Return(D(2019, time.March, 4), nil)

	today := D(2024, time.January, 10)
	w, fromJournal, err := Window(context.Background(), DefaultFormat(), []string{"P garbage"}, journal, today)
	require.NoError(t, err)
	require.True(t, fromJournal)
	require.Equal(t, date.NewRange(D(2019, time.March, 4), today), w)
}

func TestWindow_fatal(t *testing.T) {
	testCases := []struct {
		name  string
		first date.Date
		err   error
	}{
		{"ledger fails", date.Date{}, errors.New("exit status 1")},
		{"no date", date.Date{}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			journal := NewMockJournal(ctrl)
			journal.EXPECT().FirstDate(gomock.Any()).Return(tc.first, tc.err)

			_, _, err := Window(context.Background(), DefaultFormat(), nil, journal, D(2024, time.January, 10))
			require.ErrorIs(t, err, ErrNoWindow)
		})
	}
}
