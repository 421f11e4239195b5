// Package storetest holds the behaviour every store.Store implementation
// must share. Implementations run these suites from their own tests.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corycamp/support-ticket-backend/internal/domain/shared/store"
	"github.com/corycamp/support-ticket-backend/internal/domain/ticket"
	vo "github.com/corycamp/support-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/corycamp/support-ticket-backend/internal/domain/user"
	"github.com/corycamp/support-ticket-backend/internal/shared/authorization"
)

// Factory returns an empty store for one subtest.
type Factory[T any] func(t *testing.T) store.Store[T]

var createdAt = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func newTicket(title string) *ticket.Ticket {
	return &ticket.Ticket{
		Title:       title,
		Description: "description of " + title,
		Priority:    vo.PriorityMedium,
		Status:      vo.StatusOpen,
		CreatedAt:   createdAt,
	}
}

func titlePatch(title string) store.Patch[ticket.Ticket] {
	return store.Set("title", func(t *ticket.Ticket) { t.Title = title })
}

// RunTicketSuite checks the save/get/list/update/delete contract.
func RunTicketSuite(t *testing.T, newStore Factory[ticket.Ticket]) {
	ctx := context.Background()

	t.Run("save assigns fresh increasing ids", func(t *testing.T) {
		st := newStore(t)
		seen := map[uint]bool{}
		var last uint
		for i := 0; i < 5; i++ {
			rec := newTicket(fmt.Sprintf("ticket %d", i))
			rec.ID = 42
			saved, err := st.Save(ctx, rec)
			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.NotZero(t, saved.ID)
			assert.False(t, seen[saved.ID], "id %d reused", saved.ID)
			assert.Greater(t, saved.ID, last)
			seen[saved.ID] = true
			last = saved.ID
		}
	})

	t.Run("first id is one", func(t *testing.T) {
		st := newStore(t)
		saved, err := st.Save(ctx, newTicket("IT issue"))
		require.NoError(t, err)
		assert.Equal(t, uint(1), saved.ID)
	})

	t.Run("get after save returns equal record", func(t *testing.T) {
		st := newStore(t)
		saved, err := st.Save(ctx, newTicket("printer"))
		require.NoError(t, err)

		got, err := st.Get(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, saved.ID, got.ID)
		assert.Equal(t, "printer", got.Title)
		assert.Equal(t, "description of printer", got.Description)
		assert.Equal(t, vo.PriorityMedium, got.Priority)
		assert.Equal(t, vo.StatusOpen, got.Status)
		assert.True(t, createdAt.Equal(got.CreatedAt), "created_at %v", got.CreatedAt)
	})

	t.Run("get missing id is not an error", func(t *testing.T) {
		st := newStore(t)
		got, err := st.Get(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		st := newStore(t)
		rec := newTicket("original")
		saved, err := st.Save(ctx, rec)
		require.NoError(t, err)

		rec.Title = "mutated input"
		saved.Title = "mutated output"

		got, err := st.Get(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "original", got.Title)
	})

	t.Run("update changes only the patched field", func(t *testing.T) {
		st := newStore(t)
		saved, err := st.Save(ctx, newTicket("before"))
		require.NoError(t, err)

		updated, err := st.Update(ctx, saved.ID, titlePatch("after"))
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "after", updated.Title)

		got, err := st.Get(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "after", got.Title)
		assert.Equal(t, saved.ID, got.ID)
		assert.Equal(t, saved.Description, got.Description)
		assert.Equal(t, saved.Priority, got.Priority)
		assert.Equal(t, saved.Status, got.Status)
		assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("update ignores fields outside the patch columns", func(t *testing.T) {
		st := newStore(t)
		saved, err := st.Save(ctx, newTicket("keep"))
		require.NoError(t, err)

		updated, err := st.Update(ctx, saved.ID, store.Set("status", func(t *ticket.Ticket) {
			t.Status = vo.StatusClosed
		}))
		require.NoError(t, err)
		assert.Equal(t, vo.StatusClosed, updated.Status)
		assert.Equal(t, "keep", updated.Title)
	})

	t.Run("update missing id returns nil", func(t *testing.T) {
		st := newStore(t)
		got, err := st.Update(ctx, 77, titlePatch("nobody"))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update with empty patch is rejected", func(t *testing.T) {
		st := newStore(t)
		saved, err := st.Save(ctx, newTicket("x"))
		require.NoError(t, err)

		_, err = st.Update(ctx, saved.ID, store.Patch[ticket.Ticket]{})
		assert.ErrorIs(t, err, store.ErrEmptyPatch)
	})

	t.Run("delete then get yields nil", func(t *testing.T) {
		st := newStore(t)
		saved, err := st.Save(ctx, newTicket("gone"))
		require.NoError(t, err)

		deleted, err := st.Delete(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		assert.Equal(t, "gone", deleted.Title)

		got, err := st.Get(ctx, saved.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		again, err := st.Delete(ctx, saved.ID)
		require.NoError(t, err)
		assert.Nil(t, again)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		st := newStore(t)
		a, err := st.Save(ctx, newTicket("a"))
		require.NoError(t, err)
		b, err := st.Save(ctx, newTicket("b"))
		require.NoError(t, err)
		_, err = st.Delete(ctx, b.ID)
		require.NoError(t, err)

		c, err := st.Save(ctx, newTicket("c"))
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, c.ID)
		assert.NotEqual(t, b.ID, c.ID)
	})

	t.Run("list returns N minus M records in id order", func(t *testing.T) {
		st := newStore(t)
		var ids []uint
		for i := 0; i < 6; i++ {
			saved, err := st.Save(ctx, newTicket(fmt.Sprintf("t%d", i)))
			require.NoError(t, err)
			ids = append(ids, saved.ID)
		}
		for _, id := range []uint{ids[1], ids[4]} {
			_, err := st.Delete(ctx, id)
			require.NoError(t, err)
		}

		all, err := st.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, []string{"t0", "t2", "t3", "t5"}, titles(all))
	})

	t.Run("list on empty store is empty", func(t *testing.T) {
		st := newStore(t)
		all, err := st.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

// RunCommentSuite checks filtering by column.
func RunCommentSuite(t *testing.T, newStore Factory[ticket.Comment]) {
	ctx := context.Background()

	byTicket := func(id uint) store.Condition[ticket.Comment] {
		return store.Where("ticket_id", id, func(c *ticket.Comment) bool { return c.TicketID == id })
	}

	t.Run("find filters by ticket in insertion order", func(t *testing.T) {
		st := newStore(t)
		for i, tid := range []uint{1, 2, 1, 3, 1} {
			_, err := st.Save(ctx, &ticket.Comment{
				TicketID:  tid,
				Author:    "alice@example.com",
				Content:   fmt.Sprintf("c%d", i),
				CreatedAt: createdAt,
			})
			require.NoError(t, err)
		}

		found, err := st.Find(ctx, byTicket(1))
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, "c0", found[0].Content)
		assert.Equal(t, "c2", found[1].Content)
		assert.Equal(t, "c4", found[2].Content)

		none, err := st.Find(ctx, byTicket(9))
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("orphan ticket ids are stored", func(t *testing.T) {
		st := newStore(t)
		saved, err := st.Save(ctx, &ticket.Comment{TicketID: 12345, Author: "bob", Content: "orphan", CreatedAt: createdAt})
		require.NoError(t, err)
		assert.Equal(t, uint(12345), saved.TicketID)
	})
}

// RunUserSuite checks unique email enforcement.
func RunUserSuite(t *testing.T, newStore Factory[user.User]) {
	ctx := context.Background()

	newUser := func(email string) *user.User {
		return &user.User{Email: email, Role: authorization.RoleUser, CreatedAt: createdAt}
	}

	t.Run("duplicate email on save", func(t *testing.T) {
		st := newStore(t)
		_, err := st.Save(ctx, newUser("alice@example.com"))
		require.NoError(t, err)

		_, err = st.Save(ctx, newUser("alice@example.com"))
		assert.ErrorIs(t, err, store.ErrDuplicate)

		all, err := st.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("duplicate email on update", func(t *testing.T) {
		st := newStore(t)
		_, err := st.Save(ctx, newUser("alice@example.com"))
		require.NoError(t, err)
		bob, err := st.Save(ctx, newUser("bob@example.com"))
		require.NoError(t, err)

		_, err = st.Update(ctx, bob.ID, store.Set("email", func(u *user.User) { u.Email = "alice@example.com" }))
		assert.ErrorIs(t, err, store.ErrDuplicate)

		got, err := st.Get(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", got.Email)
	})

	t.Run("find by email", func(t *testing.T) {
		st := newStore(t)
		saved, err := st.Save(ctx, newUser("carol@example.com"))
		require.NoError(t, err)

		found, err := st.Find(ctx, store.Where("email", "carol@example.com", func(u *user.User) bool {
			return u.Email == "carol@example.com"
		}))
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, saved.ID, found[0].ID)
	})

	t.Run("role update keeps email", func(t *testing.T) {
		st := newStore(t)
		saved, err := st.Save(ctx, newUser("dave@example.com"))
		require.NoError(t, err)

		updated, err := st.Update(ctx, saved.ID, store.Set("role", func(u *user.User) { u.Role = authorization.RoleAdmin }))
		require.NoError(t, err)
		assert.Equal(t, authorization.RoleAdmin, updated.Role)
		assert.Equal(t, "dave@example.com", updated.Email)
	})
}

func titles(tickets []*ticket.Ticket) []string {
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.Title)
	}
	return out
}
