package help

const usageText = `f is a friendlier front end for fd(1).

Usage:
  f [flags] [<pattern>] [<path>...] [-- <fd-args>...]

By default f searches hidden and ignored files, matches the pattern against
the full path, ignores case, and treats the pattern as a glob that may
appear anywhere in the name ("foo" becomes "**/*foo*"). Version control
directories (.git, .hg, .svn) are skipped. With no pattern, only the
filters run.

Type:
  -f                files only (same as -t f)
  -d                directories only (same as -t d)
  -x                executables only (same as -t x)
  -t <type>         filter by type; repeatable, comma lists allowed

Matching:
  -n                match the basename instead of the full path
  -w                match the whole name or path, no wildcards added
  -T                match the end of the name or path
  -r                treat patterns as regular expressions
  -F                treat patterns as literal strings
  -C                match case (default: ignore case)
  -P <pattern>      additional pattern that must also match; repeatable

Filtering:
  -G                skip files ignored by .gitignore and friends
  -O                skip hidden files
  -V                include .git, .hg, and .svn directories
  -E <glob>         exclude entries matching glob; repeatable
  -e <ext>          filter by extension; repeatable
  -S <size>         filter by size; repeatable
  -N                skip empty files (same as -S +1b)
  -c <t>            modified within the given duration or since a date
  -b <t>            modified before the given duration or date
  -D <n>            descend at most n directories
  -o                do not cross file system boundaries
  -L                follow symbolic links

Output:
  -a                print absolute paths
  -l                long listing format
  -0                separate results by NUL
  -1                stop after the first result

Execution:
  -X <cmd>          run cmd for each result
  -B <cmd>          run cmd once with all results

Other:
  -h, --help        show this help
  -v, --version     show the version

Pass "help" as the value of -c, -b, -S, -t, -X, or -B for details on that
flag. Everything after "--" is handed to fd unchanged.

Environment:
  F_FD      fd program name or path (default: fd, then fdfind)
  F_DEBUG   print the fd command line to stderr before running it

Examples:
  f readme                  paths containing "readme", any case
  f -dwn node_modules       directories named exactly node_modules
  f -dn -P ws resvg         directory names containing both resvg and ws
  f -f -e toml              every TOML file
  f -c 2d -e go             Go files changed in the last two days
  f -e md -B 'wc -l'        count lines across all Markdown files
`

const timeText = `Time filters (-c and -b)

The value is either a duration or an absolute point in time:

  10h, 1d, 2weeks, 3min    a duration counted back from now
  2024-10-27               a date
  2024-10-27 10:00:00      a date and time
  @1704067200              a Unix timestamp

-c keeps entries modified more recently than the time; -b keeps entries
modified earlier. Both may be given to select a window.

Examples:
  f -c 2d                  changed in the last two days
  f -b 2023-01-01 -e log   logs untouched since 2023
`

const sizeText = `Size filters (-S)

The value is <+|-><number><unit>:

  +   at least this size
  -   at most this size
      (no sign) exactly this size

Units: b (bytes), k, m, g, t (1000-based), ki, mi, gi, ti (1024-based).

-S may be repeated; every filter must hold. -N is shorthand for -S +1b.

Examples:
  f -S +10m                files of 10 MB or more
  f -S +1k -S -1m          between 1 kB and 1 MB
`

const typeText = `Type filters (-t)

  f, file          regular files
  d, dir           directories
  l, symlink       symbolic links
  x, executable    executables
  e, empty         empty files or directories
  s, socket        sockets
  p, pipe          named pipes
  b, block-device  block devices
  c, char-device   character devices

-t may be repeated and takes comma separated lists; an entry matching any
of the given types is kept. -f, -d, and -x are shorthand for -t f, -t d,
and -t x.

Examples:
  f -t f,l conf            files or symlinks containing "conf"
  f -d -t e                empty directories
`

const execText = `Per-result execution (-X)

Runs the command once for each result, in parallel. The command is split
on whitespace and these placeholders are replaced:

  {}    the path
  {/}   the basename
  {//}  the parent directory
  {.}   the path without extension
  {/.}  the basename without extension

If no placeholder is present, the path is appended.

Examples:
  f -e zip -X 'unzip {}'
  f -e jpg -X 'convert {} {.}.png'
`

const execBatchText = `Batch execution (-B)

Runs the command once with every result as arguments. The command is split
on whitespace and {} marks where the paths go; without it they are
appended. {/}, {//}, {.}, and {/.} work as they do for -X.

Examples:
  f -e py -B 'wc -l'
  f -e rs -B 'vim {}'
`
