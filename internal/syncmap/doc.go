// Package syncmap offers a small generic map guarded by a sync.RWMutex. It
// backs the per-URL document cache of the icon-set loader.
package syncmap
