// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/bonfirectl/bonfire/internal/meta"
)

const bashCompletionScript = `# bash completion for bonfire
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_bonfire()
{
    local cur prev cmd sub
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "config settings trust completion --config-dir --log-level --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    sub=${COMP_WORDS[2]}

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text yaml json" -- "$cur") )
        return 0
    fi
    if [[ "$prev" == "--log-level" ]]; then
        COMPREPLY=( $(compgen -W "trace debug info warn error fatal" -- "$cur") )
        return 0
    fi

    case "$cmd" in
        config)
            if [[ ${COMP_CWORD} -eq 2 ]]; then
                COMPREPLY=( $(compgen -W "write-default edit show path" -- "$cur") )
                return 0
            fi
            case "$sub" in
                edit)  local opts="--editor" ;;
                show)  local opts="--config --query -q --output -o" ;;
                *)     local opts="" ;;
            esac
            ;;
        settings)
            local opts="--output -o --ref-env --fallback-ref-env --prefer --requester"
            ;;
        trust)
            if [[ ${COMP_CWORD} -eq 2 ]]; then
                COMPREPLY=( $(compgen -W "check policy" -- "$cur") )
                return 0
            fi
            local opts="--kind --path --value --app --component"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts=""
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _bonfire bonfire
`

const zshCompletionScript = `#compdef bonfire

_bonfire() {
  local -a cmds
  cmds=(
    'config:manage the bonfire config file'
    'settings:show resolved settings'
    'trust:inspect the resource trust policy'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'bonfire commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    config)
      if (( CURRENT == 3 )); then
        _values 'config commands' write-default edit show path
        return
      fi
      case $words[3] in
        write-default)
          _arguments '1::PATH:_files'
          ;;
        edit)
          _arguments '--editor[editor command]:editor' '1::PATH:_files'
          ;;
        show)
          _arguments \
            '--config[config file]:file:_files' \
            '(-q --query)'{-q,--query}'[dotted path]:query' \
            '(-o --output)'{-o,--output}'[output format]:format:(yaml json)'
          ;;
      esac
      ;;
    settings)
      _arguments -C \
        '(-o --output)'{-o,--output}'[output format]:format:(text yaml json)' \
        '--ref-env[reference environment]:env' \
        '--fallback-ref-env[fallback reference environment]:env' \
        '--prefer[preferred params]:prefer' \
        '--requester[namespace requester]:requester'
      ;;
    trust)
      if (( CURRENT == 3 )); then
        _values 'trust commands' check policy
        return
      fi
      _arguments -C \
        '--kind[resource kind]:kind' \
        '--path[field path]:path' \
        '--value[field value]:value' \
        '--app[owning app]:app' \
        '--component[owning component]:component'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _bonfire bonfire
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := outWriter(cmd)

	shell := firstArg(cmd)
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		fmt.Fprintln(os.Stderr, "usage: bonfire completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "bonfire completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
