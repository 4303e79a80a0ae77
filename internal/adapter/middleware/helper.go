package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	reUUID  = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

func buildKey(method, path, staffID, requestID string) string {
	return "idemp:kop:" + strings.ToLower(method) + ":" + path + ":" + staffID + ":" + requestID
}

// requestID reads X-Request-Id; UUID or 32-char hex accepted.
func requestID(req *http.Request) (string, error) {
	id := strings.ToLower(strings.TrimSpace(req.Header.Get("X-Request-Id")))
	if id == "" {
		return "", errors.New("missing X-Request-Id")
	}
	if !reUUID.MatchString(id) && !reHex32.MatchString(id) {
		return "", errors.New("invalid X-Request-Id format")
	}
	return id, nil
}

// staffHeader reads X-Staff-Id, the operator scoping the idempotency key.
func staffHeader(req *http.Request) (string, error) {
	id := strings.TrimSpace(req.Header.Get("X-Staff-Id"))
	if id == "" {
		return "", errors.New("missing X-Staff-Id")
	}
	if !reHex32.MatchString(id) {
		return "", errors.New("invalid X-Staff-Id")
	}
	return id, nil
}

// ---- Redis helpers ----

func provisionalSet(ctx context.Context, rdb *redis.Client, key string, entry idempEntry) (bool, error) {
	payload, _ := json.Marshal(entry)
	return rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

func loadEntry(ctx context.Context, rdb *redis.Client, key string) (idempEntry, error) {
	var e idempEntry
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	_ = json.Unmarshal(v, &e)
	return e, nil
}

func saveFinal(ctx context.Context, rdb *redis.Client, key string, entry idempEntry, ttl time.Duration) error {
	payload, _ := json.Marshal(entry)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
