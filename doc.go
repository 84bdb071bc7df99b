// Package budgify provides the ledger engine of a personal-finance tracker.
// It is local-first: every record lives in plain text files that can be read,
// diffed and edited by hand.
//
// The core functionalities include:
//   - Record Codec: encoding and decoding transactions and users to and from
//     single comma separated lines, skipping malformed lines instead of failing.
//   - File Store: durable persistence of the transaction and user files, with
//     append for new records and full rewrite for removals and edits.
//   - Ledger: the in-memory list of transactions of a session, reloaded from
//     the file store after every mutation.
//   - Auth Store: registration and authentication of users, the first user
//     being the admin.
//   - Query Engine: filtering transactions by category, text and date range.
//   - Aggregation Engine: dashboard totals, category breakdown, monthly
//     income/expense series and running-balance trend.
//
// Amounts are signed: a positive amount is an income, a negative one an
// expense.
//
// This package serves as the foundational logic for the `budgify`
// command-line tool.
package budgify
