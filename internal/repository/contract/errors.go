package contract

import "errors"

// ErrDuplicateName is returned by TopicRepository.Create when the storage
// level unique constraint on (group_id, name_key) rejects the insert.
var ErrDuplicateName = errors.New("duplicate name within group")
