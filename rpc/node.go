// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/mode"
	"github.com/fundpool/treasuryd/publish"
)

// Node - daemon status calls
type Node struct {
	log     *logger.L
	limiter *rate.Limiter
	version string
}

// NodeInfoArguments - empty argument block
type NodeInfoArguments struct{}

// NodeInfoReply - daemon status summary
type NodeInfoReply struct {
	Version     string `json:"version"`
	Network     string `json:"network"`
	Mode        string `json:"mode"`
	Connections uint64 `json:"connections"`
	Published   uint64 `json:"published"`
	Uptime      string `json:"uptime"`
}

// Info - report the daemon's running state
func (n *Node) Info(arguments *NodeInfoArguments, reply *NodeInfoReply) error {

	if err := rateLimit(n.limiter); nil != err {
		return err
	}

	reply.Version = n.version
	reply.Network = mode.NetworkName()
	reply.Mode = mode.String()
	reply.Connections = ConnectionCount()
	reply.Published = publish.PublishedCount()
	reply.Uptime = time.Since(globalData.start).Round(time.Second).String()
	return nil
}
