// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"net"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/fault"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// NewBind - bind a list of "host:port" addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil) // IPv4 traffic
	socket6 := (*zmq.Socket)(nil) // IPv6 traffic

	err := error(nil)

	for i, address := range listen {
		host, _, splitErr := net.SplitHostPort(address)
		if nil != splitErr {
			err = fault.InvalidItem
			goto fail
		}
		{
			v6 := false
			if ip := net.ParseIP(host); nil != ip {
				v6 = nil == ip.To4()
			}
			bindTo := "tcp://" + address

			if v6 {
				if nil == socket6 {
					socket6, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
				}
			} else {
				if nil == socket4 {
					socket4, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
				}
			}
			if nil != err {
				goto fail
			}

			if v6 {
				err = socket6.Bind(bindTo)
			} else {
				err = socket4.Bind(bindTo)
			}
			if nil != err {
				log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
				goto fail
			}
			log.Infof("bind[%d]: %q  IPv6: %t", i, bindTo, v6)
		}
	}
	return socket4, socket6, nil

	// on error close any opened sockets
fail:
	if nil != socket4 {
		socket4.Close()
	}
	if nil != socket6 {
		socket6.Close()
	}
	return nil, nil, err
}

// NewServerSocket - create a socket suitable for a server side
// connection
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	// allow any client holding the server's public key to connect
	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	socket.SetCurveServer(1)
	socket.SetCurveSecretkey(string(privateKey))

	socket.SetZapDomain(zapDomain)

	socket.SetIdentity(string(publicKey)) // just use public key for identity

	socket.SetIpv6(v6)

	// heartbeat
	socket.SetHeartbeatIvl(heartbeatInterval)
	socket.SetHeartbeatTimeout(heartbeatTimeout)
	socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil
}
