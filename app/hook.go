package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/werk/internal/apperr"
)

const bashHook = `# werk shell integration for bash
# Add to ~/.bashrc: eval "$(werk hook bash)"
_werk_check_switch() {
  if [ "$PWD" != "${_WERK_LAST_DIR:-}" ]; then
    if [ -n "${_WERK_LAST_DIR:-}" ]; then
      %[1]s check-switch --from "$_WERK_LAST_DIR" --to "$PWD"
      if [ $? -eq %[2]d ]; then
        builtin cd -- "$_WERK_LAST_DIR" || return
      fi
    fi
    _WERK_LAST_DIR="$PWD"
  fi
}

case ";${PROMPT_COMMAND:-};" in
  *";_werk_check_switch;"*) ;;
  *) PROMPT_COMMAND="_werk_check_switch${PROMPT_COMMAND:+;$PROMPT_COMMAND}" ;;
esac
`

const zshHook = `# werk shell integration for zsh
# Add to ~/.zshrc: eval "$(werk hook zsh)"
_werk_check_switch() {
  %[1]s check-switch --from "$OLDPWD" --to "$PWD"
  if [[ $? -eq %[2]d ]]; then
    builtin cd -q -- "$OLDPWD"
  fi
}

autoload -Uz add-zsh-hook
add-zsh-hook chpwd _werk_check_switch
`

// hookScript returns the snippet that wires directory changes in shell to
// the check-switch command of the werk binary at bin.
func hookScript(shell, bin string) (string, error) {
	var tmpl string

	switch strings.ToLower(shell) {
	case "bash":
		tmpl = bashHook
	case "zsh":
		tmpl = zshHook
	default:
		return "", errUnsupportedShell.Fmt(shell)
	}

	return fmt.Sprintf(tmpl, shellquote.Join(bin), apperr.ExitProjectBlocked), nil
}

func hookAction(ctx *cli.Context) error {
	bin, err := os.Executable()
	if err != nil {
		bin = "werk"
	}

	script, err := hookScript(ctx.Args().First(), bin)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(ctx.App.Writer, script)

	return err
}
