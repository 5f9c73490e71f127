package snowflake

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Message ids are snowflakes: 42 bits of unix millisecond timestamp, 10 bits
// of worker id, 12 bits of increment. A later message therefore always gets a
// numerically larger id, so decimal-rendered ids sort by creation time.

type Snowflake struct {
	Timestamp int64
	WorkerID  int64
	Increment int64
}

const (
	timestampLength int64 = 42
	timestampPos          = 64 - timestampLength
	workerLength    int64 = 10
	workerPos             = timestampPos - workerLength
	incrementLength       = 64 - (timestampLength + workerLength)
)

const (
	maxWorkerValue    = 1<<workerLength - 1
	maxIncrementValue = 1<<incrementLength - 1
)

var (
	lastIncrement, lastTimestamp int64
	mutex                        sync.Mutex

	workerID    int64 = 0
	hasWorkerID       = false
)

func Setup(id int64) error {
	if id > maxWorkerValue {
		return fmt.Errorf("worker ID value exceeds maximum value of [%d]", int64(maxWorkerValue))
	} else if !hasWorkerID {
		workerID = id
		hasWorkerID = true
		return nil
	}

	return fmt.Errorf("worker ID for snowflake generator has been already set")
}

func Generate() (int64, error) {
	mutex.Lock()
	defer mutex.Unlock()

	timestamp := time.Now().UnixMilli()
	if timestamp == lastTimestamp {
		lastIncrement += 1
		if lastIncrement > maxIncrementValue {
			return 0, fmt.Errorf("increment overflow after increment reached %d", lastIncrement)
		}
	} else {
		lastIncrement = 0
		lastTimestamp = timestamp
	}

	return timestamp<<timestampPos | workerID<<workerPos | lastIncrement, nil
}

// GenerateString renders a fresh snowflake as a decimal string, the form
// entity ids take throughout the store.
func GenerateString() (string, error) {
	id, err := Generate()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

func Extract(snowflakeId int64) Snowflake {
	return Snowflake{
		Timestamp: snowflakeId >> timestampPos,
		WorkerID:  (snowflakeId >> workerPos) & maxWorkerValue,
		Increment: snowflakeId & maxIncrementValue,
	}
}

func ExtractTimestamp(snowflakeId int64) int64 {
	return snowflakeId >> timestampPos
}

// Time recovers the creation time embedded in a decimal-rendered id. The
// boolean is false if the string is not a snowflake.
func Time(id string) (time.Time, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ExtractTimestamp(n)), true
}
