package redisstore

import "errors"

var (
	ErrFailedToParseConnString = errors.New("redisstore.failed_to_parse_connection_string")
	ErrRedisNotReady           = errors.New("redisstore.not_ready_within_timeout")
)
