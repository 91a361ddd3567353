// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordcheck spell checker, lookup server and CLI
[DBG] application.

wordcheck loads a word list into an in-memory chained hash table that answers
case-insensitive membership queries in near-constant time. The table starts
with a configured number of buckets and doubles whenever the load factor
would pass 0.75, rehashing every word into the larger bucket array.

# Usage

Check a text and print the misspelled words with a timing summary:

	wordcheck check --dict /usr/share/dict/words essay.txt

Read from stdin, suggest two corrections per word and show load progress:

	cat essay.txt | wordcheck check --suggest 2 --progress

Check the visible text of a web page:

	wordcheck check --html page.html

Start the msgpack IPC server:

	wordcheck serve -d

Look words up interactively:

	wordcheck repl --limit 10

Print the shape of the loaded table:

	wordcheck stats

Dictionaries are either plain text files with one word per line, a single
chunk file named dict_0001.bin, or a directory of chunk files dict_0001.bin,
dict_0002.bin and so on. Relative paths are resolved against the working
directory, the executable directory and the dictionaries folder of the
config directory, in that order.

# Configuration

Runtime configuration is a TOML file, created with defaults in the user
config directory when missing:

	[dict]
	path = "words.txt"
	initial_capacity = 1024

	[check]
	suggestions = 0

	[server]
	default_limit = 5
	max_batch = 512

	[log]
	level = "warn"

Use --config to point at another file. Flags always win over the file.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed one at a time and every response includes the time taken in
microseconds.

	{"id": "req1", "a": "check", "w": ["teh"], "l": 2}
	{"id": "req1", "r": [{"w": "teh", "f": false, "s": ["ten", "the"]}], "m": 1, "t": 9}

See package server for the suggest and stats actions.
*/
package main

import (
	"fmt"
	"os"

	"github.com/bastiangx/wordcheck/cmd/wordcheck/cmd"
	"github.com/charmbracelet/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", cmd.AppName)
		os.Exit(1)
	}
}
