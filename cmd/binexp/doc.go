/*
Command binexp simplifies arithmetic expressions given in prefix notation.

In batch mode, binexp reads expressions from files (or stdin), one per line, and
writes the simplified expressions to stdout, one line per input line:

	binexp [-notation prefix|infix|postfix] [-lenient] [-workers n] [-fail-fast] [file ...]

Lines which cannot be parsed are reported on stderr and produce an empty output line,
unless -fail-fast is set. With -repl, binexp starts an interactive session, where
each input line is simplified and displayed in all three notations (and as a tree,
with -tree).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'binexp.cli'
func tracer() tracing.Trace {
	return tracing.Select("binexp.cli")
}
