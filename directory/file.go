// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/fault"
)

// one record in the directory file; accounts are Base58 strings,
// terminal and controller may be omitted
type entityRecord struct {
	Owner      string `json:"owner"`
	Terminal   string `json:"terminal"`
	Controller string `json:"controller"`
}

// decoded roles of one entity
type entityEntry struct {
	owner      *account.Account
	terminal   *account.Account
	controller *account.Account
}

// FileDirectory - Directory provider backed by a JSON file
//
// the file maps decimal entity ids to role records:
//
//   {
//     "1": {"owner": "…", "terminal": "…", "controller": "…"},
//     "2": {"owner": "…"}
//   }
//
// edits to the file take effect without a restart: the watcher process
// reloads it on every write event, keeping the previous table when a
// reload fails to parse
type FileDirectory struct {
	sync.RWMutex
	log      *logger.L
	filename string
	watcher  *fsnotify.Watcher
	entities map[uint64]entityEntry
}

// NewFileDirectory - load the directory file and set up its watcher
func NewFileDirectory(filename string) (*FileDirectory, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	d := &FileDirectory{
		log:      logger.New("directory"),
		filename: filename,
	}

	if err := d.reload(); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}
	if err := watcher.Add(filename); nil != err {
		watcher.Close()
		return nil, err
	}
	d.watcher = watcher

	d.log.Infof("loaded: %q  entities: %d", filename, len(d.entities))
	return d, nil
}

// parse one optional account field
func (d *FileDirectory) decodeRole(field string, name string, id string) (*account.Account, error) {
	if "" == field {
		return nil, nil
	}
	role, err := account.AccountFromBase58(field)
	if nil != err {
		d.log.Errorf("entity: %s  bad %s account: %q", id, name, field)
		return nil, err
	}
	return role, nil
}

// re-read the file, replacing the table only on a full clean parse
func (d *FileDirectory) reload() error {

	data, err := ioutil.ReadFile(d.filename)
	if nil != err {
		return err
	}

	records := make(map[string]entityRecord)
	if err := json.Unmarshal(data, &records); nil != err {
		return err
	}

	entities := make(map[uint64]entityEntry, len(records))
	for id, record := range records {
		entity, err := strconv.ParseUint(id, 10, 64)
		if nil != err {
			return fault.InvalidItem
		}
		if "" == record.Owner {
			return fault.InvalidItem
		}
		owner, err := d.decodeRole(record.Owner, "owner", id)
		if nil != err {
			return err
		}
		terminal, err := d.decodeRole(record.Terminal, "terminal", id)
		if nil != err {
			return err
		}
		controller, err := d.decodeRole(record.Controller, "controller", id)
		if nil != err {
			return err
		}
		entities[entity] = entityEntry{
			owner:      owner,
			terminal:   terminal,
			controller: controller,
		}
	}

	d.Lock()
	d.entities = entities
	d.Unlock()
	return nil
}

// Run - reload loop, started under the background runner
func (d *FileDirectory) Run(args interface{}, shutdown <-chan struct{}, done chan<- struct{}) {

	defer close(done)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event := <-d.watcher.Events:
			if 0 == event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Chmod) {
				continue loop
			}
			if err := d.reload(); nil != err {
				d.log.Errorf("reload failed: %s  keeping previous table", err)
				continue loop
			}
			d.RLock()
			count := len(d.entities)
			d.RUnlock()
			d.log.Infof("reloaded: entities: %d", count)

		case err := <-d.watcher.Errors:
			d.log.Errorf("watch error: %s", err)
		}
	}

	d.watcher.Close()
	d.log.Info("stopped")
}

func (d *FileDirectory) lookup(entity uint64) (entityEntry, error) {
	d.RLock()
	defer d.RUnlock()
	entry, ok := d.entities[entity]
	if !ok {
		return entityEntry{}, fault.EntityNotFound
	}
	return entry, nil
}

// OwnerOf - the entity's current owning account
func (d *FileDirectory) OwnerOf(entity uint64) (*account.Account, error) {
	entry, err := d.lookup(entity)
	if nil != err {
		return nil, err
	}
	return entry.owner, nil
}

// TerminalOf - the entity's active terminal, nil when none is set
func (d *FileDirectory) TerminalOf(entity uint64) (*account.Account, error) {
	entry, err := d.lookup(entity)
	if nil != err {
		return nil, err
	}
	return entry.terminal, nil
}

// IsController - check the caller against the controlling role
//
// entities without a controller record cannot mint or burn at all
func (d *FileDirectory) IsController(entity uint64, caller *account.Account) (bool, error) {
	entry, err := d.lookup(entity)
	if nil != err {
		return false, err
	}
	if nil == entry.controller {
		return false, nil
	}
	return entry.controller.SameAs(caller), nil
}
