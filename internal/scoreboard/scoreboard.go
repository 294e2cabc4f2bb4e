// Package scoreboard ranks accounts by experience for display.
package scoreboard

import (
	"sort"

	"github.com/tanvi/linguify/internal/account"
)

// DisplayLimit caps how many entries the scoreboard screen shows.
const DisplayLimit = 10

// Entry is a read-only ranking projection of an account.
type Entry struct {
	Rank             int
	Username         string
	Experience       int
	CompletedQuizzes int
}

// Rank orders accounts by experience descending. Ties keep the input
// (sign-up) order. Rank numbers start at 1.
func Rank(accounts []*account.Account) []Entry {
	entries := make([]Entry, 0, len(accounts))
	for _, acc := range accounts {
		entries = append(entries, Entry{
			Username:         acc.Username,
			Experience:       acc.Experience,
			CompletedQuizzes: acc.CompletedQuizzes,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Experience > entries[j].Experience
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Top returns the first DisplayLimit entries of Rank.
func Top(accounts []*account.Account) []Entry {
	entries := Rank(accounts)
	if len(entries) > DisplayLimit {
		entries = entries[:DisplayLimit]
	}
	return entries
}
