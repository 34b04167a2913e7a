// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the gamo CLI, a vocabulary corpus builder.

gamo takes raw candidate word lists, filters and classifies them, groups them
into per-length buckets and, when a corpus of plain-text books is available,
attaches example sentences mined from it.

# Usage

Sort the candidate list in the current directory:

	gamo sort

Sort a project elsewhere, excluding words already in a vocabulary dir and
attaching corpus examples:

	gamo sort --base ./aparter --vocab ./vocabulary --attach

Rank every vocabulary list by corpus popularity:

	gamo concord --vocab ./vocabulary

Emit the vocabulary lists with rank keys:

	gamo build --vocab ./vocabulary --keys

Look up corpus examples for words starting with a prefix:

	gamo lookup cat

# Files

All paths are relative to --base:

	word.on              candidate list (input)
	word.off             excluded list (input, must be a subset of word.on)
	public_domain/       corpus .txt files (custom_public_domain/ is optional)
	parts/               sort output: word.on, match.on, <L>-<n>.on, <L>-<n>.off
	booktore/            concord output
	build/               build output
	palabras.on          words in ranked order, rewritten on every ranking

# Configuration

Options live in gamo.toml inside the base dir, created with defaults when
missing:

	[rules]
	min_len = 2
	max_len = 25

	[classify]
	match_pattern = ""
	anchor_end = true
	order = ["match", "simple"]

	[concordance]
	attach = false
	context_left = 3
	context_right = 9
	right_char_budget = 50
	occurrences_per_word = 3
*/
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "gamo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
