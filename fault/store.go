package fault

import "errors"

var (
	ErrKeyNotFound        = errors.New("key not found")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrBucketCreateFailed = errors.New("bucket create failed")
	ErrUnmarshalFailed    = errors.New("unmarshal failed")
	ErrMarshalFailed      = errors.New("marshal failed")
	ErrNilRecord          = errors.New("nil record")
	ErrPutFailed          = errors.New("put failed")
	ErrIndexUpdateFailed  = errors.New("index update failed")
	ErrNotIndexed         = errors.New("attribute not indexed")
)
