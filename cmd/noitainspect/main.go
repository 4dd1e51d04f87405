// Command noitainspect attaches to a running Noita process and reads
// its entities, materials, stats, and translations straight out of
// memory, the way pedumper.go reads a PE file's structures.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/necauqua/noita-memreader/discovery"
	"github.com/necauqua/noita-memreader/internal/peimage"
	"github.com/necauqua/noita-memreader/noita"
	"github.com/necauqua/noita-memreader/process"
)

var pid uint32

func prettyPrint(v any) string {
	buf, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<error marshaling %T: %v>", v, err)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		return string(buf)
	}
	return pretty.String()
}

// connectSession attaches to pid, discovers its globals, and wraps
// both in a Session ready for the subcommands below.
func connectSession() (*noita.Session, error) {
	ref, err := process.Connect(pid, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to pid %d: %w", pid, err)
	}
	image, err := peimage.ReadExeImage(ref, ref.Header())
	if err != nil {
		ref.Close()
		return nil, fmt.Errorf("snapshotting image: %w", err)
	}
	globals := discovery.Run(image)
	return noita.NewSession(ref, globals), nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "noitainspect",
		Short: "Inspects a running Noita process's live game state",
		Long:  "noitainspect attaches to a running Noita process and reads its entities, materials, stats, and translations straight out of memory.",
	}
	rootCmd.PersistentFlags().Uint32VarP(&pid, "pid", "p", 0, "process id of the running game (required)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("noitainspect 0.1.0")
		},
	}

	connectCmd := &cobra.Command{
		Use:   "connect",
		Short: "Attach and print the pid, image base and build timestamp",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := connectSession()
			if err != nil {
				return err
			}
			defer session.Proc().Close()
			fmt.Printf("attached to pid %d, base 0x%08x, build timestamp 0x%08x\n",
				session.Proc().Pid(), session.Proc().Base(), session.Proc().Header().Timestamp)
			return nil
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the current run's seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := connectSession()
			if err != nil {
				return err
			}
			defer session.Proc().Close()

			seed, err := session.ReadSeed()
			if err != nil {
				return err
			}
			if seed == nil {
				fmt.Println("no run is currently active")
				return nil
			}
			fmt.Println(seed.String())
			return nil
		},
	}

	playerCmd := &cobra.Command{
		Use:   "player",
		Short: "Print the current player entity's id, state, and position",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := connectSession()
			if err != nil {
				return err
			}
			defer session.Proc().Close()

			player, state, err := session.GetPlayer()
			if err != nil {
				return err
			}
			if player == nil {
				fmt.Println("no player entity found")
				return nil
			}
			stateName := [...]string{"normal", "polymorphed", "cessated"}[state]
			fmt.Printf("entity %d (%s) at (%.1f, %.1f)\n",
				player.ID, stateName, player.Transform.Pos.X, player.Transform.Pos.Y)
			return nil
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the global stats-tracking singleton as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := connectSession()
			if err != nil {
				return err
			}
			defer session.Proc().Close()

			stats, err := session.ReadStats()
			if err != nil {
				return err
			}
			fmt.Println(prettyPrint(stats.Global))
			return nil
		},
	}

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "List every registered material's internal name",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := connectSession()
			if err != nil {
				return err
			}
			defer session.Proc().Close()

			materials, err := session.Materials()
			if err != nil {
				return err
			}
			if materials == nil {
				fmt.Println("no run is currently active")
				return nil
			}
			for i, name := range materials {
				fmt.Printf("%4d  %s\n", i, name)
			}
			return nil
		},
	}

	var titleCase bool
	translationsCmd := &cobra.Command{
		Use:   "translations <key>",
		Short: "Resolve a translation key against the current language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := connectSession()
			if err != nil {
				return err
			}
			defer session.Proc().Close()

			translations, err := session.Translations()
			if err != nil {
				return err
			}
			fmt.Println(translations.Translate(args[0], titleCase))
			return nil
		},
	}
	translationsCmd.Flags().BoolVarP(&titleCase, "title-case", "t", false, "title-case the resolved string, as the in-game UI does for item names")

	var outPath string
	fileCmd := &cobra.Command{
		Use:   "file <virtual-path>",
		Short: "Fetch one file's bytes out of the game's virtual filesystem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := connectSession()
			if err != nil {
				return err
			}
			defer session.Proc().Close()

			data, err := session.GetFile(args[0])
			if err != nil {
				return err
			}
			if outPath == "" {
				os.Stdout.Write(data)
				return nil
			}
			return os.WriteFile(outPath, data, 0o644)
		},
	}
	fileCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the file to this path instead of stdout")

	rootCmd.AddCommand(versionCmd, connectCmd, seedCmd, playerCmd, statsCmd, materialsCmd, translationsCmd, fileCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
