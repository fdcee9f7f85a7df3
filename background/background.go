// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

// Process - interface for a background process
//
// Run is started as a goroutine and must return promptly after the
// shutdown channel is closed, closing done on its way out.
type Process interface {
	Run(args interface{}, shutdown <-chan struct{}, done chan<- struct{})
}

// Processes - list of processes to start
type Processes []Process

// the per-process shutdown/finished channel pair
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a set of started background processes
type T struct {
	s []shutdown
}

// Start - start up a set of background processes
//
// all are passed the same arguments value
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.s = make([]shutdown, len(processes))

	for i, p := range processes {
		sh := make(chan struct{})
		fin := make(chan struct{})
		register.s[i].shutdown = sh
		register.s[i].finished = fin
		go p.Run(args, sh, fin)
	}
	return register
}

// Stop - stop the set of background processes
//
// does not return until all processes have signalled done
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, s := range t.s {
		close(s.shutdown)
	}

	// wait for finished
	for _, s := range t.s {
		<-s.finished
	}
}
