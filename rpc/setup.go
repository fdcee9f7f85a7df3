// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"
	"golang.org/x/time/rate"

	"github.com/fundpool/treasuryd/counter"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/util"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// ServerArgument - passed to the callback for each new connection
type ServerArgument struct {
	Log *logger.L
}

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	listener *listener.MultiListener

	version string
	start   time.Time

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// open connections
var connectionCount counter.Counter

// per-connection request limiting
const (
	rateLimitValue = 200 // requests per second
	rateBurstCount = 100
)

// Initialise - start the RPC server
func Initialise(configuration *RPCConfiguration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	globalData.version = version
	globalData.start = time.Now()
	log.Info("starting…")

	if configuration.MaximumConnections <= 0 {
		log.Errorf("invalid maximum connection limit: %d", configuration.MaximumConnections)
		return fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Error("missing listen addresses")
		return fault.MissingParameters
	}

	if !util.EnsureFileExists(configuration.Certificate) {
		log.Errorf("certificate: %q does not exist", configuration.Certificate)
		return fault.MissingParameters
	}
	if !util.EnsureFileExists(configuration.PrivateKey) {
		log.Errorf("private key: %q does not exist", configuration.PrivateKey)
		return fault.MissingParameters
	}

	keyPair, err := tls.LoadX509KeyPair(configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		log.Errorf("failed to load keypair: %s", err)
		return err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fingerprint := sha3.Sum256(keyPair.Certificate[0])
	log.Infof("SHA3-256 fingerprint: %x", fingerprint)

	limiter := listener.NewLimiter(configuration.MaximumConnections)

	ml, err := listener.NewMultiListener("rpc", configuration.Listen, tlsConfiguration, limiter, Callback)
	if nil != err {
		log.Errorf("invalid listen addresses: %v", configuration.Listen)
		return err
	}
	globalData.listener = ml

	argument := &ServerArgument{
		Log: logger.New("rpc-server"),
	}
	globalData.listener.Start(argument)

	globalData.initialised = true
	return nil
}

// Finalise - stop the RPC server
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.listener.Stop()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}

// ConnectionCount - number of currently open client connections
func ConnectionCount() uint64 {
	return connectionCount.Uint64()
}

// Callback - handle a new client connection
func Callback(conn *listener.ClientConnection, argument interface{}) {

	serverArgument := argument.(*ServerArgument)

	server := rpc.NewServer()

	server.Register(&Capability{log: serverArgument.Log, limiter: rate.NewLimiter(rateLimitValue, rateBurstCount)})
	server.Register(&Splits{log: serverArgument.Log, limiter: rate.NewLimiter(rateLimitValue, rateBurstCount)})
	server.Register(&Token{log: serverArgument.Log, limiter: rate.NewLimiter(rateLimitValue, rateBurstCount)})
	server.Register(&Node{log: serverArgument.Log, limiter: rate.NewLimiter(rateLimitValue, rateBurstCount), version: globalData.version})

	connectionCount.Increment()
	defer connectionCount.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	server.ServeCodec(codec)
}
