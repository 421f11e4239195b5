// Package seed loads fixture data from a YAML file through the application
// services, so seeded records pass the same validation as API input.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corycamp/support-ticket-backend/internal/application"
	"github.com/corycamp/support-ticket-backend/internal/application/comment"
	"github.com/corycamp/support-ticket-backend/internal/application/ticket"
	"github.com/corycamp/support-ticket-backend/internal/application/user"
	"github.com/corycamp/support-ticket-backend/internal/shared/errors"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

type Fixture struct {
	Users   []UserFixture   `yaml:"users"`
	Tickets []TicketFixture `yaml:"tickets"`
}

type UserFixture struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type TicketFixture struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Priority    string           `yaml:"priority"`
	Status      string           `yaml:"status"`
	Comments    []CommentFixture `yaml:"comments"`
}

type CommentFixture struct {
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

// Summary counts what Apply created.
type Summary struct {
	Users        int
	SkippedUsers int
	Tickets      int
	Comments     int
}

func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Transactor runs fn inside one unit of work.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ApplyOption func(*applyOptions)

type applyOptions struct {
	tx Transactor
}

// WithTransactor writes each ticket together with its comments in one
// transaction.
func WithTransactor(tx Transactor) ApplyOption {
	return func(o *applyOptions) {
		o.tx = tx
	}
}

// Apply creates the fixture records. Users that already exist are skipped;
// any other failure stops the run.
func Apply(ctx context.Context, svc *application.Services, f *Fixture, log logger.Interface, opts ...ApplyOption) (*Summary, error) {
	var o applyOptions
	for _, opt := range opts {
		opt(&o)
	}
	var sum Summary

	for _, u := range f.Users {
		_, err := svc.Users.Create(ctx, user.CreateUserCommand{Email: u.Email, Role: u.Role})
		if errors.IsConflictError(err) {
			log.Infow("seed user already exists", "email", u.Email)
			sum.SkippedUsers++
			continue
		}
		if err != nil {
			return &sum, fmt.Errorf("seed user %q: %w", u.Email, err)
		}
		sum.Users++
	}

	for _, tf := range f.Tickets {
		comments := 0
		err := o.run(ctx, func(ctx context.Context) error {
			comments = 0
			t, err := svc.Tickets.Create(ctx, ticket.CreateTicketCommand{
				Title:       tf.Title,
				Description: tf.Description,
				Priority:    tf.Priority,
				Status:      tf.Status,
			})
			if err != nil {
				return fmt.Errorf("seed ticket %q: %w", tf.Title, err)
			}

			for _, cf := range tf.Comments {
				if _, err := svc.Comments.Create(ctx, comment.CreateCommentCommand{
					TicketID: t.ID,
					Author:   cf.Author,
					Content:  cf.Content,
				}); err != nil {
					return fmt.Errorf("seed comment on ticket %d: %w", t.ID, err)
				}
				comments++
			}
			return nil
		})
		if err != nil {
			return &sum, err
		}
		sum.Tickets++
		sum.Comments += comments
	}

	log.Infow("seed applied", "users", sum.Users, "skipped_users", sum.SkippedUsers, "tickets", sum.Tickets, "comments", sum.Comments)
	return &sum, nil
}

func (o applyOptions) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if o.tx == nil {
		return fn(ctx)
	}
	return o.tx.RunInTransaction(ctx, fn)
}
