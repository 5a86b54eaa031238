package commtypes

import "fmt"

// TaskInfo identifies one parallel subtask of an operator. It is immutable for
// the lifetime of the task.
type TaskInfo struct {
	OperatorID   string
	OperatorName string
	SubtaskIdx   int
	Parallelism  int
}

func (t TaskInfo) String() string {
	return fmt.Sprintf("%s-%d", t.OperatorID, t.SubtaskIdx)
}
