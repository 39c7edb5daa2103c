package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"moneymanager/internal/client"
	"moneymanager/internal/clock"
	"moneymanager/internal/session"
	"moneymanager/internal/testutil"
)

const testToken = "test-token"

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type env struct {
	fake    *testutil.FakeAPI
	db      *gorm.DB
	session *session.Session
	client  *client.Client
	clock   clock.Clock
}

// newEnv wires a real client and session against the fake service. The
// session already holds a valid token.
func newEnv(t *testing.T) *env {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	clk := clock.Fixed(testNow)
	sess := session.New(session.NewGormStore(db), clk)
	fake := testutil.NewFakeAPI(t, testToken)
	fake.SetNow(func() time.Time { return testNow })

	return &env{
		fake:    fake,
		db:      db,
		session: sess,
		client:  client.New(fake.URL(), fake.Server.Client(), sess.Sign),
		clock:   clk,
	}
}

func (e *env) login(t *testing.T) {
	t.Helper()
	if err := e.session.Save(context.Background(), testToken, nil); err != nil {
		t.Fatalf("failed to store session: %v", err)
	}
}
