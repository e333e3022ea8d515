package redisstore

import "github.com/vaultpass/credgen/internal/model"

// DefaultPrefix namespaces every key this package writes.
const DefaultPrefix = "credgen:"

type keys struct {
	prefix string
}

// credential holds one record as JSON.
func (k keys) credential(id string) string {
	return k.prefix + "credential:" + id
}

// history is owner's sorted set of ids scored by sequence. An empty kind is
// the set of all kinds.
func (k keys) history(owner string, kind model.Kind) string {
	if kind == "" {
		return k.prefix + "history:" + owner + ":all"
	}
	return k.prefix + "history:" + owner + ":" + string(kind)
}

func (k keys) sequence() string {
	return k.prefix + "seq"
}

func (k keys) preferences(owner string) string {
	return k.prefix + "preferences:" + owner
}
