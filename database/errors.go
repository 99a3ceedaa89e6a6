package database

import (
	"errors"
	"fmt"
)

// ErrNotFound 目标记录不存在
var ErrNotFound = errors.New("消费记录不存在")

// StorageError 数据库操作失败，Op 为出错的操作名
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError 判断错误链中是否包含 StorageError
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
