package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/curalink/telehealth-client/client"
	"github.com/curalink/telehealth-client/config"
	"github.com/curalink/telehealth-client/consult"
	"github.com/curalink/telehealth-client/models"
)

var (
	doctorStyle  = color.New(color.FgCyan, color.Bold)
	patientStyle = color.New(color.FgGreen)
	faintStyle   = color.New(color.Faint)
)

func main() {
	conf := config.New()

	tokens := client.ChainTokenSource{
		client.StaticTokenSource(conf.SessionToken),
		client.FileTokenSource(conf.TokenFile),
	}
	api := client.New(conf.APIOrigin, tokens)

	ctl := consult.New(api, nil, consult.Options{
		PollInterval: conf.PollInterval,
	})
	if err := ctl.Start(context.Background()); err != nil {
		zap.S().Fatalw("failed to start consult controller", "error", err)
	}
	defer ctl.Stop()

	zap.S().Infow("telehealth consult client is up and running",
		"api", api.BaseURL(),
	)

	repl(ctl)
}

func repl(ctl *consult.Controller) {
	scanner := bufio.NewScanner(os.Stdin)
	printHelp()
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		ctx := context.Background()

		switch cmd {
		case "sessions":
			printSessions(ctl)
		case "select":
			if err := ctl.Select(ctx, arg); err != nil {
				fmt.Println(err)
			}
		case "messages":
			printMessages(ctl)
		case "send":
			if err := ctl.Send(ctx, arg); err != nil {
				fmt.Println(err)
			} else {
				printMessages(ctl)
			}
		case "docs":
			printDocuments(ctl)
		case "attach":
			ctl.ToggleMessageDocument(arg)
			fmt.Println("attached:", strings.Join(ctl.MessageSelection(), ", "))
		case "share":
			ctl.ToggleRequestDocument(arg)
			fmt.Println("sharing:", strings.Join(ctl.RequestSelection(), ", "))
		case "share-all":
			ctl.SetShareAll(arg != "off")
			fmt.Println("sharing:", strings.Join(ctl.RequestSelection(), ", "))
		case "doctors":
			printDoctors(ctl)
		case "request":
			doctorID, symptoms, _ := strings.Cut(arg, " ")
			if err := ctl.RequestConsultation(ctx, doctorID, symptoms); err != nil {
				fmt.Println(err)
			} else {
				fmt.Println("consultation requested")
			}
		case "end":
			if err := ctl.End(ctx); err != nil {
				fmt.Println(err)
			} else {
				fmt.Println("consultation ended")
			}
		case "rate":
			rating, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("usage: rate <1-5>")
				continue
			}
			if err := ctl.SubmitRating(ctx, rating, ""); err != nil {
				fmt.Println(err)
			} else {
				fmt.Println("thanks for the feedback")
			}
		case "help":
			printHelp()
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command, try: help")
		}

		if prompt := ctl.RatingPrompt(); prompt != nil {
			faintStyle.Printf("how was your consultation with %s? use: rate <1-5>\n", prompt.DoctorName)
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  sessions              list active consultations
  select <id>           focus a consultation
  messages              show the focused thread
  send <text>           send a message
  docs                  list your documents
  attach <doc-id>       toggle a document on the next message
  doctors               list the doctor directory
  share <doc-id>        toggle a document on the next request
  share-all [off]       share every document on the next request
  request <doctor> <symptoms>
  end                   end the focused consultation
  rate <1-5>            answer an open rating prompt
  quit`)
}

func printSessions(ctl *consult.Controller) {
	active := ctl.Active()
	if len(active) == 0 {
		fmt.Println("no active consultations")
		return
	}
	selected := ctl.Selected()
	for _, s := range active {
		marker := " "
		if selected != nil && selected.ID == s.ID {
			marker = "*"
		}
		fmt.Printf("%s %s  %s  started %s\n", marker, s.ID, s.DoctorName, s.StartedAt.Format("15:04"))
	}
}

func printMessages(ctl *consult.Controller) {
	for _, m := range ctl.Messages() {
		style := patientStyle
		if m.Sender == models.SenderDoctor {
			style = doctorStyle
		}
		style.Printf("[%s] %s: %s\n", m.SentAt.Format("15:04"), m.Sender, m.Content)
		for _, d := range m.Documents {
			faintStyle.Printf("         attachment: %s\n", d.Filename)
		}
	}
	for _, ob := range ctl.Outbound() {
		switch ob.Status {
		case consult.SendPending:
			faintStyle.Printf("[sending] %s\n", ob.Content)
		case consult.SendUnknown:
			faintStyle.Printf("[unconfirmed] %s\n", ob.Content)
		}
	}
}

func printDocuments(ctl *consult.Controller) {
	for _, d := range ctl.Documents() {
		fmt.Printf("%s  %s  %d bytes\n", d.ID, d.Filename, d.Size)
	}
}

func printDoctors(ctl *consult.Controller) {
	for _, d := range ctl.Doctors() {
		fmt.Printf("%s  Dr. %s %s  %s\n", d.ID, d.FirstName, d.LastName, d.Specialization)
	}
}
