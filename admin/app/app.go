package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/book-exchange-admin/admin/config"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/handler"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/server"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/service/book"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/service/reader"
	"github.com/Astemirdum/book-exchange-admin/pkg/kafka"
	"github.com/Astemirdum/book-exchange-admin/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg config.Config) error { //nolint:gocritic
	log := logger.NewLogger(cfg.Log, "admin")
	defer log.Sync() //nolint:errcheck

	var producer sarama.AsyncProducer
	if cfg.Kafka.Enabled() {
		p, err := kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka.NewAsyncProducer")
		}
		producer = p
	} else {
		log.Info("kafka disabled, stats are not published")
	}

	h := handler.New(log, cfg,
		book.NewService(log, cfg),
		reader.NewService(log, cfg),
		handler.NewStatsLog(producer, cfg.Kafka.StatsTopic),
	)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	gg, ctx := errgroup.WithContext(ctx)

	gg.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	if producer != nil {
		gg.Go(func() error {
			for perr := range producer.Errors() {
				log.Warn("stats producer", zap.Error(perr.Err), zap.String("topic", perr.Msg.Topic))
			}
			return nil
		})
	}
	gg.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(ctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := srv.Stop(closeCtx); err != nil {
			return errors.Wrap(err, "srv.Stop")
		}
		if producer != nil {
			// closing drains Errors, ending the reader above
			if err := producer.Close(); err != nil {
				log.Warn("producer close", zap.Error(err))
			}
		}
		return nil
	})

	if err := gg.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
