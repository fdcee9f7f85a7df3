// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"reflect"
	"strconv"

	"github.com/fundpool/treasuryd/counter"
)

// Message - content of a queue item
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// Queue - a drop-on-overflow message queue
//
// notifications are advisory; a queue that is not being drained must
// not block the operation that produced the notification, so sends
// into a full queue are counted and discarded
type Queue struct {
	c       chan Message
	size    int
	dropped counter.Counter
}

// buses - all available message queues
//
// the size tag gives the queue depth
type buses struct {
	Broadcast *Queue `size:"1000"` // to broadcast to external subscribers
	TestQueue *Queue `size:"50"`   // for unit tests
}

// Bus - all available message queues
var Bus buses

// create all queues with the configured sizes
func init() {
	busValue := reflect.ValueOf(&Bus).Elem()
	busType := busValue.Type()

	for i := 0; i < busType.NumField(); i += 1 {
		size, err := strconv.Atoi(busType.Field(i).Tag.Get("size"))
		if nil != err || size < 1 {
			panic("messagebus: invalid size tag on: " + busType.Field(i).Name)
		}
		q := &Queue{
			c:    make(chan Message, size),
			size: size,
		}
		busValue.Field(i).Set(reflect.ValueOf(q))
	}
}

// Send - add a message to a queue
func (queue *Queue) Send(command string, parameters ...[]byte) {
	message := Message{
		Command:    command,
		Parameters: parameters,
	}
	select {
	case queue.c <- message:
	default:
		queue.dropped.Increment()
	}
}

// Chan - channel to read from a queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages discarded because the queue was full
func (queue *Queue) Dropped() uint64 {
	return queue.dropped.Uint64()
}

// DrainForTest - discard all messages currently held in a queue
func (queue *Queue) DrainForTest() {
	for {
		select {
		case <-queue.c:
		default:
			return
		}
	}
}
