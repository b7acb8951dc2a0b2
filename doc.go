/*
Package binexp is a small toolbox for binary expression trees.

It parses arithmetic expressions in prefix notation, renders them in prefix, infix
or postfix notation, and simplifies them by term rewriting. Package structure is
as follows:

■ scanner: Package scanner splits input lines into tokens, either by whitespace or
with a lexmachine DFA.

■ expr: Package expr implements the expression tree, i.e. parsing, rendering
and structural operations.

■ rewrite: Package rewrite implements simplification passes (identities, zero
absorption, constant folding) and a pipeline to apply them.

■ batch: Package batch processes a sequence of input lines in parallel, one
expression per line.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package binexp
