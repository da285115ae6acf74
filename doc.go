// Package kakeibo keeps a household account book in a single JSON file.
//
// A ledger is a JSON array of [Item] values. The [Store] loads the whole file
// for every operation and replaces it atomically after every change:
//   - Append records a new item with the next free id.
//   - Remove deletes an item by id.
//   - Update changes the label, amount and description of an item.
//   - Find returns a single item.
//
// Amounts are unsigned integers in a currency minor unit. [Currency] converts
// them from and to what the user types and reads.
//
// This package is the foundation of the `kb` command-line tool.
package kakeibo
