/* Package main: linescript -- a line at a time

linescript runs a file written in a tiny notation of numeric variables and a
single output primitive. There are no expressions, branches, loops, or user
defined functions: each statement either declares a variable, reassigns one,
or prints one.

Statements end with ';', and a line may hold several of them:

	x: int = 10;
	y: double = 2.5; y = 2.25;
	print(x); print(y); // prints 10 then 2.25

Whitespace and lone '/' runes are never significant, and "//" comments out
the rest of a line.

Section 1: Variables

A declaration names a variable, a type, and a literal value: "int" is a Go
int, "float" a float32, and "double" a float64. The type keywords are
reserved, and may not be used as names. Declaring an existing name again
replaces both its type and its value.

An assignment without a type keeps the variable's existing type. Assigning
to a name never declared is an error, unless the assignment carries an empty
type annotation, as in "z: = 4.5;", which declares a double.

Integer and float literals read their longest numeric prefix, so "4.9" is the
int 4 and "1.5x" the float 1.5; text with no digits up front reads as 0.
Double literals are read as an optional '-', digits, and an optional '.' with
more digits; anything after that is ignored. There is no exponent form.
Floats print with at most 6 significant digits.

Section 2: Diagnostics

A line that cannot be fully executed records a diagnostic code, and the run
carries on with the next line. The last code raised on a line wins. Once every
line has run, each diagnostic is printed in line order:

	Error [3]: Variable undeclared.
	    line 5: print(z);

The codes are:

	-2  statement never reached its terminator
	-1  unreadable code, like a value with no name
	 0  a name with no type or value
	 1  assignment to an undeclared variable
	 2  a call without an argument
	 3  printing an undeclared variable
	 4  an unknown type keyword
	 5  a reserved keyword used as a name

Section 3: Running

	linescript [-v] [-debug] [-dump] [-report file] [-j n] file...

Each file runs in a fresh interpreter; several files run concurrently, but
their output is always printed in argument order. The -v flag traces every
variable change and diagnostic, stamped with the seconds elapsed since the
file was opened:

	[1.2e-05s] NEW_INT_VARIABLE NAME: x VALUE: 10

*/
package main
