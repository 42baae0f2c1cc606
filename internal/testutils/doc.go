// Package testutils provides testing utilities for the todo API.
//
// This package contains helpers for:
//   - Detecting whether integration tests can run (DATABASE_URL)
//   - Opening a migrated test database and running each test in a
//     transaction that is always rolled back
//   - Inserting users and tasks as fixtures
//
// # Database Operations
//
//	db := testutils.GetTestDBWithT(t)
//	testutils.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    userID := testutils.MustInsertUser(ctx, t, tx, "jane@example.com")
//	    taskID := testutils.MustInsertTask(ctx, t, tx, userID, domain.TaskStatusPending)
//	    count := testutils.CountRows(ctx, t, tx, "tasks", "user_id = $1", userID)
//	})
package testutils
