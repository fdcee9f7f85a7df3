// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/counter"
	"github.com/fundpool/treasuryd/messagebus"
	"github.com/fundpool/treasuryd/zmqutil"
)

const (
	heartbeatInterval = 60 * time.Second
	heartbeatCommand  = "heart"
	zapDomain         = "publisher"
)

type broadcaster struct {
	log       *logger.L
	socket4   *zmq.Socket
	socket6   *zmq.Socket
	published counter.Counter
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	if 0 == len(broadcast) {
		log.Info("no broadcast addresses")
		return nil
	}

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	brdc.socket4 = socket4
	brdc.socket6 = socket6
	return nil
}

// Run - wait for notifications and publish them
//
// also publishes a heartbeat message every so often to keep
// subscribers aware the socket is alive
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}, done chan<- struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := messagebus.Bus.Broadcast.Chan()

loop:
	for {
		log.Debug("waiting…")

		select {
		case <-shutdown:
			break loop

		case message := <-queue:
			log.Debugf("received: %s  parameters: %x", message.Command, message.Parameters)
			brdc.process(message.Command, message.Parameters)

		case <-time.After(heartbeatInterval):
			brdc.process(heartbeatCommand, nil)
		}
	}

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	close(done)
}

// publish a notification to all open sockets
func (brdc *broadcaster) process(command string, parameters [][]byte) {

	if nil == brdc.socket4 && nil == brdc.socket6 {
		return
	}

	last := len(parameters)
	if nil != brdc.socket4 {
		brdc.send(brdc.socket4, command, parameters, last)
	}
	if nil != brdc.socket6 {
		brdc.send(brdc.socket6, command, parameters, last)
	}
	brdc.published.Increment()
}

func (brdc *broadcaster) send(socket *zmq.Socket, command string, parameters [][]byte, last int) {

	flag := zmq.SNDMORE
	if 0 == last {
		flag = 0
	}
	_, err := socket.Send(command, flag)
	if nil != err {
		brdc.log.Errorf("send error: %s", err)
		return
	}
	for i, parameter := range parameters {
		flag = zmq.SNDMORE
		if i+1 == last {
			flag = 0
		}
		_, err := socket.SendBytes(parameter, flag)
		if nil != err {
			brdc.log.Errorf("send error: %s", err)
			return
		}
	}
}

// PublishedCount - number of notifications pushed out since start
func PublishedCount() uint64 {
	return globalData.brdc.published.Uint64()
}
