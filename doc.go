/* Command stacc: a stack calculator, almost FORTH

stacc reads lines of postfix arithmetic and evaluates them against a single
stack of numbers, which lives for the whole session.  Numbers are pushed;
words pop their operands and push their results:

	> 3 4 +
	[0] 7
	> 2 *
	[0] 14
	> .
	14
	>

The words are:

	+     add the top two numbers
	-     subtract the top number from the one below it
	*     multiply the top two numbers
	/     divide the number below the top by the top
	.     pop the top number and print it
	exit  end the session

Dividing by zero is not an error; it produces an infinity, or NaN.

Any line that fails, because it asks too much of the stack, uses an unknown
word, or has a malformed number like 1.2.3, is reported and abandoned at the
failing step.  Whatever it did before that step stays done, and the session
carries on with the next line.

When standard input is a terminal, lines are read through a line editor with
history and word completion; Ctrl-D or Ctrl-C ends the session, an interrupt
during evaluation only once the line is done.  Otherwise
lines are read from standard input until it ends, failures are reported with
their line number, the final stack is printed, and the exit status is
non-zero if any line failed.  The -e flag evaluates a single line the same
way.
*/
package main
