// Package legacy folds structured items into the single tag document older
// clients read.
//
// # Registry
//
// New registers exactly one rule per component kind in a dense table.
// Validate reports any kind left without a rule; callers run it at startup
// so a missing rule fails loudly instead of at the first matching item.
//
// # Conversion
//
// Convert walks the item's entries in stored order, skips removed entries
// and folds each value into one shared document. Rules that write into the
// display and BlockEntityTag sub-trees locate or create them, so the result
// does not depend on which rule runs first.
//
// List-valued components drop elements whose ids do not exist in the legacy
// registries. Armor trims are the exception: a direct material or pattern
// whose backing item cannot be resolved abandons the whole trim.
//
// # Backup
//
// With PreserveInconvertibleData enabled, values without a legacy equivalent
// are stored under the "VV|DataComponents" compound. RemoveBackupTag
// detaches it again.
package legacy
